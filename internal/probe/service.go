package probe

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"imagegecko-probe/internal/common/errors"
	httpclient "imagegecko-probe/internal/common/http"
	"imagegecko-probe/internal/common/logger"
	"imagegecko-probe/internal/common/metrics"
)

// Poster sends one JSON POST and returns the fully read response.
type Poster interface {
	PostJSON(ctx context.Context, url string, payload interface{}) (*httpclient.Response, error)
}

type Service struct {
	config *Config
	client Poster
	logger logger.Logger
	report *Reporter
}

// NewService wires a probe run. out receives the console report.
func NewService(deps ServiceDependencies, config *Config, out io.Writer) *Service {
	client := deps.Client
	if client == nil {
		client = httpclient.NewClient(config.Timeout, config.Headers())
	}
	log := deps.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Service{
		config: config,
		client: client,
		logger: log,
		report: NewReporter(out),
	}
}

// Execute runs read → encode → build → send → print once. The returned
// Result is never nil. The error is a *errors.StandardError for a missing
// file, an encode failure or a failed request; a non-200 status is not an
// error.
func (s *Service) Execute(ctx context.Context) (*Result, error) {
	result := &Result{RunID: uuid.NewString()}
	log := s.logger.With(map[string]interface{}{
		"runId":    result.RunID,
		"endpoint": s.config.Endpoint,
	})

	if err := CheckImage(s.config.ImagePath); err != nil {
		return s.fail(log, result, err), err
	}

	s.report.Start(s.config.Endpoint, s.config.ImagePath)

	img, err := EncodeImage(s.config.ImagePath)
	if err != nil {
		return s.fail(log, result, err), err
	}
	s.report.Encoded(img)
	log.Info("image encoded", map[string]interface{}{
		"fileName":     img.FileName,
		"mimeType":     img.MimeType,
		"bytes":        img.Size,
		"base64Length": len(img.Base64),
	})

	payload := BuildPayload(img, s.config.Payload)
	s.report.PayloadSummary(s.config.Endpoint, payload)
	if body, err := json.Marshal(payload); err == nil {
		metrics.ProbePayloadBytes.Set(float64(len(body)))
	}

	if s.config.DryRun {
		s.report.DryRun()
		result.Outcome = OutcomeDryRun
		metrics.ProbeRequests.WithLabelValues(string(result.Outcome)).Inc()
		log.Info("dry run, request not sent", nil)
		return result, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := s.client.PostJSON(ctx, s.config.Endpoint, payload)
	result.Duration = time.Since(start)
	metrics.ProbeRequestDuration.Observe(result.Duration.Seconds())
	if err != nil {
		stdErr := s.classifyRequestError(err)
		return s.fail(log, result, stdErr), stdErr
	}

	result.StatusCode = resp.StatusCode
	result.Headers = resp.Headers
	result.Body = resp.Body
	result.IsJSON = json.Valid(resp.Body)
	result.Inspection = InspectResponse(resp.StatusCode, resp.Body)
	metrics.RecordStatus(resp.StatusCode)

	s.report.Response(result)
	s.report.Inspection(result.Inspection)
	s.report.Outcome(resp.StatusCode)

	if resp.StatusCode == http.StatusOK {
		result.Outcome = OutcomeSuccess
		log.Info("API call successful", map[string]interface{}{
			"statusCode": resp.StatusCode,
			"durationMs": result.Duration.Milliseconds(),
		})
	} else {
		result.Outcome = OutcomeHTTPFailure
		log.Warn("API call failed", map[string]interface{}{
			"statusCode": resp.StatusCode,
			"durationMs": result.Duration.Milliseconds(),
		})
	}
	metrics.ProbeRequests.WithLabelValues(string(result.Outcome)).Inc()

	return result, nil
}

// fail prints the console line for a handled error, records it and sets the outcome.
func (s *Service) fail(log logger.Logger, result *Result, err error) *Result {
	var stdErr *errors.StandardError
	if !stderrors.As(err, &stdErr) {
		stdErr = errors.NewUnexpectedError(err)
	}

	switch stdErr.Code {
	case errors.ErrCodeFileNotFound:
		result.Outcome = OutcomeFileMissing
		s.report.FileNotFound(s.config.ImagePath)
	case errors.ErrCodeImageEncodeFailed:
		result.Outcome = OutcomeEncodeFailed
		s.report.EncodeFailed(stdErr.Details)
	case errors.ErrCodeRequestFailed, errors.ErrCodeRequestTimeout:
		result.Outcome = OutcomeRequestFailed
		s.report.RequestFailed(stdErr.Details)
	default:
		result.Outcome = OutcomeUnexpected
		s.report.UnexpectedError(stdErr.Details)
	}

	metrics.ProbeRequests.WithLabelValues(string(result.Outcome)).Inc()
	log.Error("probe failed", stdErr.ToLogFields())
	return result
}

func (s *Service) classifyRequestError(err error) *errors.StandardError {
	if stderrors.Is(err, httpclient.ErrEncodePayload) {
		return errors.NewUnexpectedError(err)
	}

	var netErr net.Error
	if stderrors.Is(err, context.DeadlineExceeded) || (stderrors.As(err, &netErr) && netErr.Timeout()) {
		return errors.NewRequestTimeoutError(s.config.Endpoint, err)
	}
	return errors.NewRequestFailedError(s.config.Endpoint, err)
}
