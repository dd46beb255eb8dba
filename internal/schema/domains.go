package schema

// Domain names used by repositories. Keeping them as constants avoids a
// typo'd string silently registering nothing.
const (
	DomainAdminUsers         = "admin_users"
	DomainArticles           = "articles"
	DomainTestimonials       = "testimonials"
	DomainMediaItems         = "media_items"
	DomainJobPostings        = "job_postings"
	DomainProcurementNotices = "procurement_notices"
	DomainReports            = "reports"
	DomainStaffProfiles      = "staff_profiles"
	DomainGalleries          = "galleries"
	DomainGalleryImages      = "gallery_images"
	DomainSubscribers        = "subscribers"
)

// builtinDomains declares the column definition for every content domain
// once. Each DDL is a single conditional statement; evolution of an existing
// table is deliberately out of scope for the registry.
var builtinDomains = []Domain{
	{
		Name: DomainAdminUsers,
		DDL: `CREATE TABLE IF NOT EXISTS admin_users (
			id            SERIAL PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			name          TEXT NOT NULL DEFAULT '',
			role          TEXT NOT NULL DEFAULT 'admin',
			is_active     BOOLEAN NOT NULL DEFAULT TRUE,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Name: DomainArticles,
		DDL: `CREATE TABLE IF NOT EXISTS articles (
			id           SERIAL PRIMARY KEY,
			title        TEXT NOT NULL,
			slug         TEXT NOT NULL UNIQUE,
			excerpt      TEXT NOT NULL DEFAULT '',
			body         TEXT NOT NULL DEFAULT '',
			cover_url    TEXT NOT NULL DEFAULT '',
			author_id    INTEGER,
			is_published BOOLEAN NOT NULL DEFAULT FALSE,
			published_at TIMESTAMPTZ,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Name: DomainTestimonials,
		DDL: `CREATE TABLE IF NOT EXISTS testimonials (
			id           SERIAL PRIMARY KEY,
			author_name  TEXT NOT NULL,
			organization TEXT NOT NULL DEFAULT '',
			quote        TEXT NOT NULL,
			photo_url    TEXT NOT NULL DEFAULT '',
			is_published BOOLEAN NOT NULL DEFAULT FALSE,
			sort_order   INTEGER NOT NULL DEFAULT 0,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Name: DomainMediaItems,
		DDL: `CREATE TABLE IF NOT EXISTS media_items (
			id           SERIAL PRIMARY KEY,
			title        TEXT NOT NULL,
			kind         TEXT NOT NULL DEFAULT 'press',
			file_url     TEXT NOT NULL DEFAULT '',
			source_name  TEXT NOT NULL DEFAULT '',
			published_on DATE,
			is_published BOOLEAN NOT NULL DEFAULT FALSE,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Name: DomainJobPostings,
		DDL: `CREATE TABLE IF NOT EXISTS job_postings (
			id           SERIAL PRIMARY KEY,
			title        TEXT NOT NULL,
			department   TEXT NOT NULL DEFAULT '',
			location     TEXT NOT NULL DEFAULT '',
			description  TEXT NOT NULL DEFAULT '',
			apply_url    TEXT NOT NULL DEFAULT '',
			closes_on    DATE,
			is_published BOOLEAN NOT NULL DEFAULT FALSE,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Name: DomainProcurementNotices,
		DDL: `CREATE TABLE IF NOT EXISTS procurement_notices (
			id           SERIAL PRIMARY KEY,
			title        TEXT NOT NULL,
			reference_no TEXT NOT NULL UNIQUE,
			summary      TEXT NOT NULL DEFAULT '',
			document_url TEXT NOT NULL DEFAULT '',
			opens_on     DATE,
			closes_on    DATE,
			is_published BOOLEAN NOT NULL DEFAULT FALSE,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Name: DomainReports,
		DDL: `CREATE TABLE IF NOT EXISTS reports (
			id           SERIAL PRIMARY KEY,
			title        TEXT NOT NULL,
			category     TEXT NOT NULL DEFAULT 'annual',
			year         INTEGER NOT NULL DEFAULT 0,
			file_url     TEXT NOT NULL DEFAULT '',
			is_published BOOLEAN NOT NULL DEFAULT FALSE,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Name: DomainStaffProfiles,
		DDL: `CREATE TABLE IF NOT EXISTS staff_profiles (
			id         SERIAL PRIMARY KEY,
			full_name  TEXT NOT NULL,
			position   TEXT NOT NULL DEFAULT '',
			division   TEXT NOT NULL DEFAULT '',
			photo_url  TEXT NOT NULL DEFAULT '',
			bio        TEXT NOT NULL DEFAULT '',
			sort_order INTEGER NOT NULL DEFAULT 0,
			is_active  BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Name: DomainGalleries,
		DDL: `CREATE TABLE IF NOT EXISTS galleries (
			id           SERIAL PRIMARY KEY,
			title        TEXT NOT NULL,
			slug         TEXT NOT NULL UNIQUE,
			description  TEXT NOT NULL DEFAULT '',
			cover_url    TEXT NOT NULL DEFAULT '',
			is_published BOOLEAN NOT NULL DEFAULT FALSE,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Name: DomainGalleryImages,
		DDL: `CREATE TABLE IF NOT EXISTS gallery_images (
			id         SERIAL PRIMARY KEY,
			gallery_id INTEGER NOT NULL,
			image_url  TEXT NOT NULL,
			caption    TEXT NOT NULL DEFAULT '',
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Name: DomainSubscribers,
		DDL: `CREATE TABLE IF NOT EXISTS subscribers (
			id         SERIAL PRIMARY KEY,
			email      TEXT NOT NULL UNIQUE,
			is_active  BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
}
