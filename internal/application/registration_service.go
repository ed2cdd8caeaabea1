package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/config"
	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/internal/domain/entity"
	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/internal/domain/registration"
	repo "github.com/ShaikAbbuSofiyan/health-sign-up-oasis/internal/domain/repository"
	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/pkg/helpers"
	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/pkg/mailer"
	tpl "github.com/ShaikAbbuSofiyan/health-sign-up-oasis/pkg/mailer/templates"
)

var (
	ErrUsernameTaken = errors.New("username already registered")
	ErrEmailTaken    = errors.New("email already registered")
)

// ValidationError carries the field → message map of a rejected registration.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "registration validation failed" }

// Confirmation is the success notification shown to the user once a
// registration has been accepted and stored.
type Confirmation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Meta describes the submitting client, used for the welcome email.
type Meta struct {
	IP        string
	UserAgent string
}

type Service struct {
	Repo    repo.AccountRepository
	Logger  *logrus.Logger
	Cfg     *config.Config
	Pub     *helpers.RabbitPublisher
	ES      *elasticsearch.Client
	ESIndex string
}

func NewService(r repo.AccountRepository, logger *logrus.Logger, cfg *config.Config, pub *helpers.RabbitPublisher, es *elasticsearch.Client, esIndex string) *Service {
	return &Service{
		Repo:    r,
		Logger:  logger,
		Cfg:     cfg,
		Pub:     pub,
		ES:      es,
		ESIndex: esIndex,
	}
}

// Register validates the submitted fields, stores the account with a bcrypt
// password hash, and returns the success confirmation. Validation always runs
// before the duplicate checks so a rejected input never reaches the database.
func (s *Service) Register(ctx context.Context, in registration.Input, meta Meta) (*Confirmation, error) {
	if res := registration.Validate(in); !res.Accepted() {
		return nil, &ValidationError{Fields: res.Errors}
	}

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if _, err := s.Repo.GetByUsername(in.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if _, err := s.Repo.GetByEmail(in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	a := &entity.Account{
		Username:     in.Username,
		PhoneNumber:  in.PhoneNumber,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.Repo.Create(a); err != nil {
		// Concurrent submissions can slip past the pre-checks; the unique
		// constraints are the source of truth.
		switch {
		case errors.Is(err, repo.ErrDuplicateUsername):
			return nil, ErrUsernameTaken
		case errors.Is(err, repo.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	_ = s.indexAccount(ctx, a)
	s.enqueueWelcome(ctx, a, meta)

	return &Confirmation{
		ID:          a.ID,
		Title:       "Account created",
		Description: "Welcome, " + a.Username + "! Your account has been registered.",
	}, nil
}

func (s *Service) indexAccount(ctx context.Context, a *entity.Account) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":           a.ID,
		"username":     a.Username,
		"email":        a.Email,
		"phone_number": a.PhoneNumber,
		"created_at":   a.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: a.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("account_id", a.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("account_id", a.ID).Warn("es index response error")
	}
	return nil
}

func (s *Service) enqueueWelcome(ctx context.Context, a *entity.Account, meta Meta) {
	if s.Pub == nil || s.Cfg == nil || !s.Cfg.MailSendEnabled {
		return
	}
	resolver := tpl.IPAPIResolver{}
	data := tpl.NewWelcomeData(
		s.Cfg,
		a.Username,
		a.Email,
		tpl.WithTime(time.Now()),
		tpl.WithIP(meta.IP),
		tpl.WithUserAgent(meta.UserAgent),
		tpl.WithGeoFromIP(ctx, resolver, meta.IP),
	)
	job := mailer.EmailJob{To: a.Email, Template: tpl.Welcome, Data: data}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("account_id", a.ID).Warn("failed to enqueue welcome email")
	}
}

// Search performs a simple multi_match search on username and email.
func (s *Service) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"username^2", "email"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
