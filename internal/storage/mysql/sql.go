package mysql

const upsertAgentSQL = `
INSERT INTO agents
  (id, name, email)
VALUES
  (?, ?, ?)
ON DUPLICATE KEY UPDATE
  name = VALUES(name)
`

const upsertPropertySQL = `
INSERT INTO properties
  (id, slug, price, lat, lng, type, status, agent_id)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  price      = VALUES(price),
  lat        = VALUES(lat),
  lng        = VALUES(lng),
  type       = VALUES(type),
  status     = VALUES(status),
  agent_id   = VALUES(agent_id),
  updated_at = CURRENT_TIMESTAMP
`

// Atomic insert-or-update on the (entity_id, entity_type, field, lang)
// unique key. This replaces any find-then-branch sequence, so a concurrent
// "not found -> create" race cannot create duplicate rows.
const upsertTranslationSQL = `
INSERT INTO translations
  (entity_id, entity_type, field, lang, content)
VALUES
  (?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  content = VALUES(content)
`

const updatePriceSQL = `
UPDATE properties SET price = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
`

// FOR UPDATE pins the property row for the span of the admin transaction.
const lockPropertySQL = `
SELECT id FROM properties WHERE id = ? FOR UPDATE
`

const selectPropertyByIDSQL = `
SELECT id, slug, price, lat, lng, type, status, agent_id, created_at, updated_at
FROM properties
WHERE id = ?
`

const selectPropertyBySlugSQL = `
SELECT id, slug, price, lat, lng, type, status, agent_id, created_at, updated_at
FROM properties
WHERE slug = ?
`

const selectAllPropertiesSQL = `
SELECT id, slug, price, lat, lng, type, status, agent_id, created_at, updated_at
FROM properties
ORDER BY slug
`

const selectTranslationsForEntitySQL = `
SELECT id, entity_id, entity_type, field, lang, content
FROM translations
WHERE entity_id = ? AND entity_type = ?
ORDER BY id
`

const selectTranslationsForTypeSQL = `
SELECT id, entity_id, entity_type, field, lang, content
FROM translations
WHERE entity_type = ?
ORDER BY id
`
