package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON file parsing.
// Durations are accepted both as strings ("1h", "30s") and as nanosecond
// numbers via the [Duration] wrapper.
type StructuredJSONConfig struct {
	Auth struct {
		SecretKey             string   `json:"secret_key"`
		DeploymentKey         string   `json:"deployment_key"`
		TokenTTL              Duration `json:"token_ttl"`
		MinimumPasswordLength int      `json:"minimum_password_length"`
		CheckCommonPasswords  bool     `json:"check_common_passwords"`
		AllowedFailedLogins   int      `json:"allowed_failed_logins"`
		LockoutCooldown       Duration `json:"lockout_cooldown"`
		EnableSignup          bool     `json:"enable_signup"`
		OpenSignup            bool     `json:"open_signup"`
		SelfApprovalPattern   string   `json:"self_approval_pattern"`
		Allow2FA              bool     `json:"allow_2fa"`
		Require2FA            bool     `json:"require_2fa"`
		EnableForgetPassword  bool     `json:"enable_forget_password"`
		EnableResetMFA        bool     `json:"enable_reset_mfa"`
		AdminUsers            []string `json:"admin_users"`
		TOTPIssuer            string   `json:"totp_issuer"`
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

	Email struct {
		ServiceURL     string   `json:"service_url"`
		PublicBaseURL  string   `json:"public_base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		FromAddress    string   `json:"from_address"`
	} `json:"email,omitempty"`

	Workers struct {
		ThrottleSweepInterval Duration `json:"throttle_sweep_interval"`
	} `json:"workers,omitempty"`
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
			SecretKey:             jsonCfg.Auth.SecretKey,
			DeploymentKey:         jsonCfg.Auth.DeploymentKey,
			TokenTTL:              time.Duration(jsonCfg.Auth.TokenTTL),
			MinimumPasswordLength: jsonCfg.Auth.MinimumPasswordLength,
			CheckCommonPasswords:  jsonCfg.Auth.CheckCommonPasswords,
			AllowedFailedLogins:   jsonCfg.Auth.AllowedFailedLogins,
			LockoutCooldown:       time.Duration(jsonCfg.Auth.LockoutCooldown),
			EnableSignup:          jsonCfg.Auth.EnableSignup,
			OpenSignup:            jsonCfg.Auth.OpenSignup,
			SelfApprovalPattern:   jsonCfg.Auth.SelfApprovalPattern,
			Allow2FA:              jsonCfg.Auth.Allow2FA,
			Require2FA:            jsonCfg.Auth.Require2FA,
			EnableForgetPassword:  jsonCfg.Auth.EnableForgetPassword,
			EnableResetMFA:        jsonCfg.Auth.EnableResetMFA,
			AdminUsers:            jsonCfg.Auth.AdminUsers,
			TOTPIssuer:            jsonCfg.Auth.TOTPIssuer,
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
		Email: Email{
			ServiceURL:     jsonCfg.Email.ServiceURL,
			PublicBaseURL:  jsonCfg.Email.PublicBaseURL,
			RequestTimeout: time.Duration(jsonCfg.Email.RequestTimeout),
			FromAddress:    jsonCfg.Email.FromAddress,
		},
		Workers: Workers{
			ThrottleSweepInterval: time.Duration(jsonCfg.Workers.ThrottleSweepInterval),
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
