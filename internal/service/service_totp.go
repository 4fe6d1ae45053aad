// SPDX-License-Identifier: Apache-2.0

package service

import (
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/openscilab/lab-auth-keeper/models"
)

const totpPeriod = 30

type totpService struct {
	issuer string

	now func() time.Time
}

// NewTOTPService builds a [TOTPService]. The issuer is qualified by the
// server address so authenticator entries from test and local
// deployments do not collide with production ones.
func NewTOTPService(issuer, serverAddress string) TOTPService {
	return &totpService{
		issuer: qualifyIssuer(issuer, serverAddress),
		now:    time.Now,
	}
}

func qualifyIssuer(issuer, serverAddress string) string {
	host := strings.ToLower(serverAddress)
	switch {
	case strings.Contains(host, "test"):
		return issuer + "-Test"
	case strings.Contains(host, "localhost"), strings.Contains(host, "127.0.0.1"):
		return issuer + "-Local"
	default:
		return issuer
	}
}

func (s *totpService) Enroll(username string) (models.MFAEnrollResponse, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuer,
		AccountName: username,
		Period:      totpPeriod,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return models.MFAEnrollResponse{}, err
	}

	return models.MFAEnrollResponse{
		Secret: key.Secret(),
		URI:    key.URL(),
	}, nil
}

// VerifyEnrollment checks the confirmation step of enrollment: the user
// submits the current code and the next one. The first code is given a
// wider window because the user types it while the clock keeps moving.
func (s *totpService) VerifyEnrollment(code1, code2, secret string) bool {
	if code1 == "" || code2 == "" || code1 == code2 {
		return false
	}
	return s.verify(code1, secret, 2) && s.verify(code2, secret, 1)
}

func (s *totpService) VerifyLogin(code, secret string) bool {
	if code == "" {
		return false
	}
	return s.verify(code, secret, 1)
}

func (s *totpService) verify(code, secret string, skew uint) bool {
	ok, err := totp.ValidateCustom(code, secret, s.now().UTC(), totp.ValidateOpts{
		Period:    totpPeriod,
		Skew:      skew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}
