package submit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrRejected is returned when the script endpoint answers with a
// non-success status discriminator.
var ErrRejected = errors.New("submission rejected")

// ValidationError blocks a submission before any network call.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("form validation failed on %d field(s)", len(e.Fields))
}

// Submitter posts validated property forms to the remote script endpoint.
type Submitter struct {
	url    string
	client *http.Client
	logger *logrus.Logger
}

func NewSubmitter(url string, timeout time.Duration, logger *logrus.Logger) *Submitter {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &Submitter{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type scriptResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Submit validates the form, encodes the attachments, and posts everything
// as a single url-encoded request. Validation failures, transport errors,
// and rejecting responses all return an error; a network failure is never
// mistaken for success.
func (s *Submitter) Submit(ctx context.Context, form *PropertyForm, files Attachments) error {
	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		return &ValidationError{Fields: fieldErrs}
	}

	submissionID := uuid.NewString()
	body := form.BuildBody(files)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, strings.NewReader(body.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	s.logger.WithFields(logrus.Fields{
		"submission_id": submissionID,
		"title":         form.Title,
		"captador":      form.Captador,
		"images":        len(files.Images),
	}).Info("Posting property submission")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("submission request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read submission response: %w", err)
	}

	var result scriptResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return fmt.Errorf("failed to parse submission response: %w", err)
	}

	if result.Status != "success" {
		s.logger.WithFields(logrus.Fields{
			"submission_id": submissionID,
			"status":        result.Status,
			"message":       result.Message,
		}).Error("Submission rejected by script endpoint")
		return fmt.Errorf("%w: %s", ErrRejected, result.Message)
	}

	s.logger.WithField("submission_id", submissionID).Info("Property submitted")
	return nil
}
