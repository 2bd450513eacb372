package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/meetwith/scheduler-backend/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/people/v1"
)

var profileScopes = []string{
	people.UserinfoEmailScope,
	people.UserinfoProfileScope,
	people.UserPhonenumbersReadScope,
}

// Parser exchanges a Google auth code for the signed-in profile.
type Parser struct {
	conf *config.Config
}

func NewParser(conf *config.Config) *Parser {
	return &Parser{conf: conf}
}

type GoogleInfo struct {
	Name        string
	Email       string
	Picture     string
	PhoneNumber string
}

type creds struct {
	ClientId     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

func (p *Parser) loadOauthConfig() (*oauth2.Config, error) {
	file, err := os.Open(p.conf.ClientSecretPath)
	if err != nil {
		return nil, fmt.Errorf("can't open client secret: %w", err)
	}
	defer file.Close()

	secrets := make(map[string]creds)
	if err := json.NewDecoder(file).Decode(&secrets); err != nil {
		return nil, fmt.Errorf("can't parse secrets: %w", err)
	}

	secret := secrets[p.conf.ClientType]
	return &oauth2.Config{
		ClientID:     secret.ClientId,
		ClientSecret: secret.ClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  p.conf.RedirectURL,
		Scopes:       profileScopes,
	}, nil
}

func (p *Parser) GetInfoGoogle(ctx context.Context, authCode string) (*GoogleInfo, error) {
	conf, err := p.loadOauthConfig()
	if err != nil {
		return nil, err
	}

	token, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("code exchange: %w", err)
	}

	peopleService, err := people.NewService(ctx,
		option.WithScopes(profileScopes...),
		option.WithTokenSource(conf.TokenSource(ctx, token)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to People API: %w", err)
	}

	person, err := peopleService.People.
		Get("people/me").
		PersonFields("names,emailAddresses,photos,phoneNumbers").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to make request for user info: %w", err)
	}

	if person.HTTPStatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get user info: code: %d", person.HTTPStatusCode)
	}

	info := &GoogleInfo{}

	for _, n := range person.Names {
		if n.Metadata.Primary {
			info.Name = n.DisplayName
			break
		}
	}
	for _, e := range person.EmailAddresses {
		if e.Metadata.Primary {
			info.Email = e.Value
			break
		}
	}
	for _, ph := range person.Photos {
		if ph.Metadata.Primary {
			info.Picture = ph.Url
			break
		}
	}
	for _, ph := range person.PhoneNumbers {
		if ph.Metadata.Primary {
			info.PhoneNumber = ph.Value
			break
		}
	}

	return info, nil
}
