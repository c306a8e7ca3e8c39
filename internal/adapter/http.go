package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/webcrm-console/internal/config"
	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/internal/utils"
	"github.com/MKhiriev/webcrm-console/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathToken                = "/token"
	pathProcessSummary       = "/process/GetSummary"
	pathCustomersGrid        = "/customers/getgrid"
	pathFetchCustomer        = "/Customers/FetchCustomer/%s"
	pathCustomerSummary      = "/customers/Summary/%s"
	pathDestinationsByCust   = "/Destinations/FetchByCustomer/%s"
	pathDestinationByID      = "/Destinations/FetchById/%s"
	pathDestinationCreate    = "/Destinations/Create"
	pathDestinationUpdate    = "/Destinations/Update"
	pathDestinationDelete    = "/Destinations/Delete/%s"
	pathDestinationTypes     = "/TypeDestination/GetDestinationTypes"
	pathReferencesByCustomer = "/references/FetchByCustomer/%s"
	pathReferenceByID        = "/references/fetchById/%s"
	pathReferenceCreate      = "/references/create"
	pathReferenceUpdate      = "/references/update"
	pathReferenceDelete      = "/references/delete/%s"
)

// confirmationPaths holds, per confirmable category, the endpoints of the
// confirmation workflow.
var confirmationPaths = map[models.Category]struct {
	notConfirmed, confirm, dismiss, difference string
}{
	models.CategoryReferences: {
		notConfirmed: "/references/FetchNotConfirmed",
		confirm:      "/References/Confirm/%s",
		dismiss:      "/References/Dismiss/%s",
		difference:   "/references/GetDifference/%s",
	},
	models.CategoryDestinations: {
		notConfirmed: "/destinations/FetchNotConfirmed",
		confirm:      "/Destinations/Confirm/%s",
		dismiss:      "/Destinations/Dismiss/%s",
		difference:   "/destinations/GetDifference/%s",
	},
}

type httpWebCRMAdapter struct {
	client *utils.HTTPClient

	tokens TokenSource
	events EventPublisher

	logger *logger.Logger
}

// NewHTTPWebCRMAdapter constructs the resty implementation of [WebCRMAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress, applies the request
// timeout and installs the response hook that logs every call and publishes
// [models.SessionExpired] on 401.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPWebCRMAdapter(adapterCfg config.ClientAdapter, tokens TokenSource, events EventPublisher, log *logger.Logger) (WebCRMAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpWebCRMAdapter{
		client: utils.NewHTTPClient(),
		tokens: tokens,
		events: events,
		logger: log,
	}

	h.client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		OnAfterResponse(h.afterResponse)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// afterResponse runs for every response that reached the client.
func (h *httpWebCRMAdapter) afterResponse(_ *resty.Client, resp *resty.Response) error {
	req := resp.Request
	event := h.logger.Debug()
	if resp.StatusCode() >= http.StatusInternalServerError {
		event = h.logger.Error()
	}
	event.
		Str("method", req.Method).
		Str("url", req.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("webcrm request")

	if resp.StatusCode() == http.StatusUnauthorized && !strings.HasSuffix(req.URL, pathToken) {
		h.logger.Warn().Str("url", req.URL).Msg("session expired")
		if h.events != nil {
			h.events.Publish(models.SessionEvent{Kind: models.SessionExpired, Reason: req.Method + " " + req.URL})
		}
	}

	return nil
}

func (h *httpWebCRMAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.tokens == nil {
		return req
	}
	if token := strings.TrimSpace(h.tokens.Token()); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// do sends the request and maps both transport and status errors.
func do(op string, req *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, mapTransportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return resp, nil
}

func decode[T any](op string, resp *resty.Response) (T, error) {
	var v T
	if err := json.Unmarshal(resp.Body(), &v); err != nil {
		return v, fmt.Errorf("%s: %w: %w", op, ErrDecodeResponse, err)
	}
	return v, nil
}

func getJSON[T any](ctx context.Context, h *httpWebCRMAdapter, op, path string) (T, error) {
	resp, err := do(op, h.authedRequest(ctx), http.MethodGet, path)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](op, resp)
}

func sendJSON[T any](ctx context.Context, h *httpWebCRMAdapter, op, method, path string, body any) (T, error) {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)

	resp, err := do(op, req, method, path)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](op, resp)
}

// SignIn implements [WebCRMAdapter]. It POSTs the password grant as a form to
// /token. A wrong user name or password is answered with 400 and surfaces as
// [ErrBadRequest].
func (h *httpWebCRMAdapter) SignIn(ctx context.Context, in models.SignInRequest) (models.Credential, error) {
	req := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type": "password",
			"username":   in.UserName,
			"password":   in.Password,
		})

	resp, err := do("sign in", req, http.MethodPost, pathToken)
	if err != nil {
		return models.Credential{}, err
	}
	return decode[models.Credential]("sign in", resp)
}

// GetProcessSummary implements [WebCRMAdapter].
func (h *httpWebCRMAdapter) GetProcessSummary(ctx context.Context) (models.ProcessSummary, error) {
	return getJSON[models.ProcessSummary](ctx, h, "get process summary", pathProcessSummary)
}

// FetchNotConfirmed implements [WebCRMAdapter]. Rows are decoded into their
// category-specific shape and converted to [models.PendingRecord], which
// classifies the confirmed counterpart once.
func (h *httpWebCRMAdapter) FetchNotConfirmed(ctx context.Context, category models.Category) ([]models.PendingRecord, error) {
	paths, ok := confirmationPaths[category]
	if !ok {
		return nil, fmt.Errorf("fetch not confirmed %s: %w", category, ErrUnsupportedCategory)
	}
	op := "fetch not confirmed " + string(category)

	switch category {
	case models.CategoryReferences:
		rows, err := getJSON[[]models.PendingReference](ctx, h, op, paths.notConfirmed)
		if err != nil {
			return nil, err
		}
		records := make([]models.PendingRecord, 0, len(rows))
		for _, row := range rows {
			records = append(records, row.Record())
		}
		return records, nil
	default:
		rows, err := getJSON[[]models.PendingDestination](ctx, h, op, paths.notConfirmed)
		if err != nil {
			return nil, err
		}
		records := make([]models.PendingRecord, 0, len(rows))
		for _, row := range rows {
			records = append(records, row.Record())
		}
		return records, nil
	}
}

// Confirm implements [WebCRMAdapter].
func (h *httpWebCRMAdapter) Confirm(ctx context.Context, category models.Category, id models.ID) error {
	return h.decide(ctx, category, id, models.DecisionConfirm)
}

// Dismiss implements [WebCRMAdapter].
func (h *httpWebCRMAdapter) Dismiss(ctx context.Context, category models.Category, id models.ID) error {
	return h.decide(ctx, category, id, models.DecisionDismiss)
}

func (h *httpWebCRMAdapter) decide(ctx context.Context, category models.Category, id models.ID, d models.Decision) error {
	op := d.String() + " " + string(category)
	paths, ok := confirmationPaths[category]
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrUnsupportedCategory)
	}

	path := paths.confirm
	if d == models.DecisionDismiss {
		path = paths.dismiss
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(d.Request())

	_, err := do(op, req, http.MethodPost, fmt.Sprintf(path, url.PathEscape(id.String())))
	return err
}

// GetDifference implements [WebCRMAdapter].
func (h *httpWebCRMAdapter) GetDifference(ctx context.Context, category models.Category, id models.ID) ([]models.FieldDifference, error) {
	op := "get difference " + string(category)
	paths, ok := confirmationPaths[category]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrUnsupportedCategory)
	}

	diffs, err := getJSON[[]models.FieldDifference](ctx, h, op, fmt.Sprintf(paths.difference, url.PathEscape(id.String())))
	if err != nil {
		return nil, err
	}
	if diffs == nil {
		diffs = []models.FieldDifference{}
	}
	return diffs, nil
}

func (h *httpWebCRMAdapter) GetCustomers(ctx context.Context) ([]models.Customer, error) {
	return getJSON[[]models.Customer](ctx, h, "get customers", pathCustomersGrid)
}

func (h *httpWebCRMAdapter) FetchCustomer(ctx context.Context, id models.ID) (models.Customer, error) {
	return getJSON[models.Customer](ctx, h, "fetch customer", withID(pathFetchCustomer, id))
}

func (h *httpWebCRMAdapter) GetCustomerSummary(ctx context.Context, id models.ID) (models.CustomerSummary, error) {
	return getJSON[models.CustomerSummary](ctx, h, "get customer summary", withID(pathCustomerSummary, id))
}

func (h *httpWebCRMAdapter) FetchDestinationsByCustomer(ctx context.Context, customerID models.ID) ([]models.Destination, error) {
	return getJSON[[]models.Destination](ctx, h, "fetch destinations by customer", withID(pathDestinationsByCust, customerID))
}

func (h *httpWebCRMAdapter) FetchDestinationByID(ctx context.Context, id models.ID) (models.Destination, error) {
	return getJSON[models.Destination](ctx, h, "fetch destination", withID(pathDestinationByID, id))
}

func (h *httpWebCRMAdapter) CreateDestination(ctx context.Context, d models.Destination) (models.Destination, error) {
	return sendJSON[models.Destination](ctx, h, "create destination", http.MethodPost, pathDestinationCreate, d)
}

func (h *httpWebCRMAdapter) UpdateDestination(ctx context.Context, d models.Destination) (models.Destination, error) {
	return sendJSON[models.Destination](ctx, h, "update destination", http.MethodPut, pathDestinationUpdate, d)
}

func (h *httpWebCRMAdapter) DeleteDestination(ctx context.Context, id models.ID) error {
	_, err := do("delete destination", h.authedRequest(ctx), http.MethodDelete, withID(pathDestinationDelete, id))
	return err
}

func (h *httpWebCRMAdapter) GetDestinationTypes(ctx context.Context) ([]models.DestinationType, error) {
	return getJSON[[]models.DestinationType](ctx, h, "get destination types", pathDestinationTypes)
}

func (h *httpWebCRMAdapter) FetchReferencesByCustomer(ctx context.Context, customerID models.ID) ([]models.Reference, error) {
	return getJSON[[]models.Reference](ctx, h, "fetch references by customer", withID(pathReferencesByCustomer, customerID))
}

func (h *httpWebCRMAdapter) FetchReferenceByID(ctx context.Context, id models.ID) (models.Reference, error) {
	return getJSON[models.Reference](ctx, h, "fetch reference", withID(pathReferenceByID, id))
}

func (h *httpWebCRMAdapter) CreateReference(ctx context.Context, r models.Reference) (models.Reference, error) {
	return sendJSON[models.Reference](ctx, h, "create reference", http.MethodPost, pathReferenceCreate, r)
}

func (h *httpWebCRMAdapter) UpdateReference(ctx context.Context, r models.Reference) (models.Reference, error) {
	return sendJSON[models.Reference](ctx, h, "update reference", http.MethodPut, pathReferenceUpdate, r)
}

func (h *httpWebCRMAdapter) DeleteReference(ctx context.Context, id models.ID) error {
	_, err := do("delete reference", h.authedRequest(ctx), http.MethodDelete, withID(pathReferenceDelete, id))
	return err
}

func withID(pattern string, id models.ID) string {
	return fmt.Sprintf(pattern, url.PathEscape(id.String()))
}
