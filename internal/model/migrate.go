package model

import (
	"fmt"

	"gorm.io/gorm"
)

// All lists every table the service owns, parents before children.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Article{},
		&Event{},
		&Customer{},
		&Transaction{},
		&ActivityLog{},
	}
}

// foreignKeys are added after AutoMigrate because the models carry no associations.
var foreignKeys = []struct {
	name, table, column, ref string
}{
	{"fk_transactions_customer", "transactions", "customer_id", "customers"},
	{"fk_transactions_event", "transactions", "event_id", "events"},
}

// AutoMigrate creates or updates the schema, including the partial unique index on active
// orders and the transaction foreign keys. Safe to run repeatedly.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return fmt.Errorf("enable pgcrypto: %w", err)
	}

	if err := db.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	for _, fk := range foreignKeys {
		stmt := fmt.Sprintf(`DO $$ BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
				ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s(id) ON DELETE RESTRICT;
			END IF;
		END $$;`, fk.name, fk.table, fk.name, fk.column, fk.ref)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", fk.name, err)
		}
	}
	return nil
}
