package sqlinline

// Snapshot tables are created on startup when a database is configured. Both
// hold one jsonb document per client; the structure of the payload belongs to
// the owning package.

const QEnsureProfileTable = `--sql 402c87d8-0267-46ca-8a83-c4822237f49e
create table if not exists style_profiles (
    client_id  text primary key,
    payload    jsonb not null,
    created_at timestamptz not null default now(),
    updated_at timestamptz not null default now()
);
`

const QEnsureCartTable = `--sql 64e4960e-c8e5-4cfa-a6de-1a03ac7f0b87
create table if not exists carts (
    client_id  text primary key,
    payload    jsonb not null,
    created_at timestamptz not null default now(),
    updated_at timestamptz not null default now()
);
`
