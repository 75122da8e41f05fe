package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Auth struct {
		TokenSignKey      string   `json:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer"`
		AccessTokenTTL    Duration `json:"access_token_ttl"`
		RefreshTokenTTL   Duration `json:"refresh_token_ttl"`
		LoginMaxAttempts  int      `json:"login_max_attempts"`
		LoginWindow       Duration `json:"login_window"`
		TwoFAMaxAttempts  int      `json:"two_fa_max_attempts"`
		TwoFAChallengeTTL Duration `json:"two_fa_challenge_ttl"`
		BackupCodeCount   int      `json:"backup_code_count"`
		PasswordMinLength int      `json:"password_min_length"`
		EmailTokenTTL     Duration `json:"email_token_ttl"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Mailer struct {
		BaseURL        string   `json:"base_url"`
		APIKey         string   `json:"api_key"`
		From           string   `json:"from"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"mailer,omitempty"`

	Sweeper struct {
		Interval         Duration `json:"interval"`
		SessionRetention Duration `json:"session_retention"`
		EventRetention   Duration `json:"event_retention"`
	} `json:"sweeper,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Auth: Auth{
			TokenSignKey:      jsonCfg.Auth.TokenSignKey,
			TokenIssuer:       jsonCfg.Auth.TokenIssuer,
			AccessTokenTTL:    time.Duration(jsonCfg.Auth.AccessTokenTTL),
			RefreshTokenTTL:   time.Duration(jsonCfg.Auth.RefreshTokenTTL),
			LoginMaxAttempts:  jsonCfg.Auth.LoginMaxAttempts,
			LoginWindow:       time.Duration(jsonCfg.Auth.LoginWindow),
			TwoFAMaxAttempts:  jsonCfg.Auth.TwoFAMaxAttempts,
			TwoFAChallengeTTL: time.Duration(jsonCfg.Auth.TwoFAChallengeTTL),
			BackupCodeCount:   jsonCfg.Auth.BackupCodeCount,
			PasswordMinLength: jsonCfg.Auth.PasswordMinLength,
			EmailTokenTTL:     time.Duration(jsonCfg.Auth.EmailTokenTTL),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Mailer: Mailer{
			BaseURL:        jsonCfg.Mailer.BaseURL,
			APIKey:         jsonCfg.Mailer.APIKey,
			From:           jsonCfg.Mailer.From,
			RequestTimeout: time.Duration(jsonCfg.Mailer.RequestTimeout),
		},
		Sweeper: Sweeper{
			Interval:         time.Duration(jsonCfg.Sweeper.Interval),
			SessionRetention: time.Duration(jsonCfg.Sweeper.SessionRetention),
			EventRetention:   time.Duration(jsonCfg.Sweeper.EventRetention),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
