package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_type') THEN
			CREATE TYPE user_type AS ENUM ('dreamer', 'sponsor');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'offer_status') THEN
			CREATE TYPE offer_status AS ENUM ('pending', 'accepted', 'declined');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'offer_type') THEN
			CREATE TYPE offer_type AS ENUM ('loan', 'donation', 'equity', 'other');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'contract_status') THEN
			CREATE TYPE contract_status AS ENUM ('active', 'completed');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		user_type user_type NOT NULL,
		first_name VARCHAR(128),
		last_name VARCHAR(128),
		location VARCHAR(255),
		phone VARCHAR(64),
		email_verified BOOLEAN NOT NULL DEFAULT FALSE,
		verification_token VARCHAR(128),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_email ON users (email);`,
	`CREATE TABLE IF NOT EXISTS dreamer_profiles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id),
		full_name VARCHAR(255),
		location VARCHAR(255),
		bio TEXT,
		goal TEXT,
		expected_duration_min INTEGER,
		expected_duration_max INTEGER,
		weekly_need NUMERIC(18,2),
		min_total_funding NUMERIC(18,2),
		max_total_funding NUMERIC(18,2),
		skills TEXT,
		education TEXT,
		funding_types TEXT NOT NULL DEFAULT '[]',
		profile_completed BOOLEAN NOT NULL DEFAULT FALSE,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_dreamer_profiles_user_id ON dreamer_profiles (user_id);`,
	`CREATE TABLE IF NOT EXISTS sponsor_profiles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id),
		company_name VARCHAR(255),
		contact_name VARCHAR(255),
		location VARCHAR(255),
		bio TEXT,
		investment_range_min NUMERIC(18,2),
		investment_range_max NUMERIC(18,2),
		preferred_funding_types TEXT NOT NULL DEFAULT '[]',
		industries TEXT NOT NULL DEFAULT '[]',
		profile_completed BOOLEAN NOT NULL DEFAULT FALSE,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_sponsor_profiles_user_id ON sponsor_profiles (user_id);`,
	`CREATE TABLE IF NOT EXISTS user_preferences (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id),
		email_notifications TEXT NOT NULL DEFAULT '[]',
		privacy_settings TEXT NOT NULL DEFAULT '[]',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_user_preferences_user_id ON user_preferences (user_id);`,
	`CREATE TABLE IF NOT EXISTS offers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		sponsor_id UUID NOT NULL REFERENCES users(id),
		dreamer_id UUID NOT NULL REFERENCES users(id),
		amount NUMERIC(18,2) NOT NULL,
		duration_months INTEGER NOT NULL,
		type offer_type NOT NULL,
		interest_rate NUMERIC(5,2),
		message TEXT,
		status offer_status NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_offers_dreamer_id ON offers (dreamer_id);`,
	`CREATE INDEX IF NOT EXISTS idx_offers_sponsor_id ON offers (sponsor_id);`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		offer_id UUID NOT NULL REFERENCES offers(id),
		sponsor_id UUID NOT NULL REFERENCES users(id),
		dreamer_id UUID NOT NULL REFERENCES users(id),
		amount NUMERIC(18,2) NOT NULL,
		duration_months INTEGER NOT NULL,
		type offer_type NOT NULL,
		interest_rate NUMERIC(5,2),
		weekly_payment NUMERIC(18,6) NOT NULL,
		total_payments INTEGER NOT NULL,
		payments_received INTEGER NOT NULL DEFAULT 0,
		status contract_status NOT NULL DEFAULT 'active',
		start_date TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_contracts_offer_id ON contracts (offer_id);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_dreamer_id ON contracts (dreamer_id);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_sponsor_id ON contracts (sponsor_id);`,
	`CREATE TABLE IF NOT EXISTS milestones (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		owner_id UUID NOT NULL REFERENCES users(id),
		title VARCHAR(255) NOT NULL,
		description TEXT,
		target_date TIMESTAMPTZ,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		progress INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_milestones_owner_id ON milestones (owner_id);`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		owner_id UUID NOT NULL REFERENCES users(id),
		title VARCHAR(255) NOT NULL,
		message TEXT NOT NULL,
		type VARCHAR(32) NOT NULL,
		read BOOLEAN NOT NULL DEFAULT FALSE,
		action_target VARCHAR(64),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_owner_id ON notifications (owner_id);`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_owner_unread ON notifications (owner_id) WHERE NOT read;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
