package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP server configuration
	Server struct {
		Port           string   `env:"SERVER_PORT" envDefault:"5250"`
		AllowedOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	}

	// Remote listing source (spreadsheet export / script endpoint)
	Sheet struct {
		// Payload shape served by the endpoint: "values" for the
		// {values: [][]} tabular export, "objects" for a pre-shaped
		// JSON array. Selected here, never sniffed.
		Mode string `env:"SHEET_MODE" envDefault:"values"`

		ListingURL string `env:"SHEET_LISTING_URL,required"`
		RankingURL string `env:"SHEET_RANKING_URL"`

		// Script endpoint receiving property submissions
		SubmitURL string `env:"SHEET_SUBMIT_URL,required"`

		// Request timeout in seconds
		TimeoutSeconds int `env:"SHEET_TIMEOUT" envDefault:"15"`
	}

	// Media identifier expansion for image cells holding bare Drive ids
	Media struct {
		URLTemplate string `env:"MEDIA_URL_TEMPLATE" envDefault:"https://www.googleapis.com/drive/v3/files/%s?alt=media&key=%s"`
		APIKey      string `env:"MEDIA_API_KEY"`
	}

	Listing struct {
		PageSize int `env:"LISTING_PAGE_SIZE" envDefault:"6"`
	}

	// Credential directory for back-office logins. Accounts live in a
	// JSON file outside the binary so secrets never ship in source.
	Auth struct {
		UsersFile string `env:"AUTH_USERS_FILE" envDefault:"config/users.json"`
	}

	Session struct {
		Secret     string `env:"SESSION_SECRET,required"`
		CookieName string `env:"SESSION_COOKIE" envDefault:"nicaris_session"`
	}

	// Local persistence (drafts, documents)
	Storage struct {
		DraftDBPath    string `env:"DRAFT_DB_PATH" envDefault:"database/drafts.db"`
		DocumentDBPath string `env:"DOCUMENT_DB_PATH" envDefault:"database/documents.db"`

		// Drafts older than this many days are purged by the janitor
		DraftTTLDays int `env:"DRAFT_TTL_DAYS" envDefault:"30"`
		// Cron expression for the draft janitor
		JanitorSchedule string `env:"DRAFT_JANITOR_CRON" envDefault:"0 3 * * *"`
	}
}

// LoadConfig reads configuration from the environment, after loading an
// optional .env file from the working directory.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
