package googlecalendar

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Credentials учетные данные сервисного аккаунта
// Либо CredentialsFile (JSON ключ), либо пара Email + PrivateKey (PEM)
type Credentials struct {
	Email           string
	PrivateKey      string
	CredentialsFile string
}

// AuthOption возвращает опцию авторизации для клиента Google Calendar
func AuthOption(ctx context.Context, creds Credentials) (option.ClientOption, error) {
	if creds.CredentialsFile != "" {
		return option.WithCredentialsFile(creds.CredentialsFile), nil
	}

	if creds.Email == "" || creds.PrivateKey == "" {
		return nil, fmt.Errorf("%w: service account email and private key are required", ErrInvalidCredentials)
	}

	cfg := &jwt.Config{
		Email:      creds.Email,
		PrivateKey: []byte(creds.PrivateKey),
		Scopes:     []string{calendar.CalendarScope},
		TokenURL:   google.JWTTokenURL,
	}

	return option.WithTokenSource(cfg.TokenSource(ctx)), nil
}
