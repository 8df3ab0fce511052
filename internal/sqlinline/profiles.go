package sqlinline

const QUpsertProfile = `--sql 21fb0ab4-fbeb-4f73-9117-5ddd8ce3f3f2
insert into style_profiles (client_id, payload, created_at, updated_at)
values ($1::text, $2::jsonb, now(), now())
on conflict (client_id) do update set
    payload = excluded.payload,
    updated_at = now();
`

const QSelectProfile = `--sql e578a7fb-ad1e-4bfa-a691-5c2c732f6e81
select payload
from style_profiles
where client_id = $1::text
limit 1;
`

const QDeleteProfile = `--sql ac90fb29-1e2a-4ff8-89c6-e09d7963e9ca
delete from style_profiles
where client_id = $1::text;
`
