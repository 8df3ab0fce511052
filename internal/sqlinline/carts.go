package sqlinline

const QUpsertCart = `--sql 43562130-460c-4b7d-a531-1349a62aa152
insert into carts (client_id, payload, created_at, updated_at)
values ($1::text, $2::jsonb, now(), now())
on conflict (client_id) do update set
    payload = excluded.payload,
    updated_at = now();
`

const QSelectCart = `--sql 487e6384-0a16-4920-b5e9-639a37cc3d17
select payload
from carts
where client_id = $1::text
limit 1;
`

const QDeleteCart = `--sql 9ad287c2-7312-49e9-8ccb-3be8726f0cf6
delete from carts
where client_id = $1::text;
`
