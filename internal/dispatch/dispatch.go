package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/kazeph/storefront-api/internal/domain"
)

// Channel selects the delivery mechanism for an order draft.
type Channel string

const (
	ChannelMessaging Channel = "messaging"
	ChannelForm      Channel = "form"
)

// State is the terminal state of a dispatch attempt. Every attempt ends in
// exactly one of these; none is retried automatically.
type State string

const (
	StateSent     State = "sent"
	StateRejected State = "rejected"
	StateFailed   State = "failed"
)

// Result describes the outcome of a single dispatch attempt. Failures carry
// their cause in Detail; the draft itself is never modified, so the caller
// may retry with a fresh Dispatch call.
type Result struct {
	State     State  `json:"state"`
	Detail    string `json:"detail,omitempty"`
	ViaRemote bool   `json:"viaRemote"`
	Link      string `json:"link,omitempty"`
}

// submission is the wire shape POSTed to the form endpoint.
type submission struct {
	Product   string  `json:"product"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	Channel   string  `json:"channel"`
	PreOrder  bool    `json:"preOrder"`
}

// formFields is checked before a form submission is attempted. Presence
// only; field formats are deliberately not validated.
type formFields struct {
	Name  string `validate:"required"`
	Email string `validate:"required"`
	Phone string `validate:"required"`
}

// Router sends order drafts through one of the two delivery channels. The
// business contact and the optional form endpoint are fixed at construction;
// the router holds no per-order state and is safe to share.
type Router struct {
	contact    string
	endpoint   string
	httpClient *http.Client
	validation *domain.Validation
	logger     hclog.Logger
}

// NewRouter creates a Router targeting the given WhatsApp business contact.
// endpoint may be empty, in which case form orders are captured locally.
func NewRouter(contact, endpoint string, logger hclog.Logger) *Router {
	return &Router{
		contact:  contact,
		endpoint: strings.TrimSpace(endpoint),
		// No client timeout here; callers bound the submission through ctx.
		httpClient: &http.Client{},
		validation: domain.NewValidation(),
		logger:     logger,
	}
}

// Dispatch runs one attempt for the draft over the selected channel. It
// never returns a Go error; the caller always receives a terminal Result it
// can render.
func (r *Router) Dispatch(ctx context.Context, draft domain.OrderDraft, channel Channel) Result {
	switch channel {
	case ChannelMessaging:
		return r.dispatchMessaging(draft)
	case ChannelForm:
		return r.dispatchForm(ctx, draft)
	default:
		return Result{
			State:  StateRejected,
			Detail: fmt.Sprintf("unknown channel %q", channel),
		}
	}
}

// dispatchMessaging builds the deep link carrying the order summary.
// "Sending" is the caller opening the link, so this path has no failure
// mode once validation passes; messaging requires no buyer fields at all.
func (r *Router) dispatchMessaging(draft domain.OrderDraft) Result {
	link := fmt.Sprintf("https://wa.me/%s?text=%s", r.contact, url.QueryEscape(draft.SummaryText()))

	r.logger.Debug("Built messaging link", "qty", draft.Quantity)

	return Result{State: StateSent, ViaRemote: true, Link: link}
}

func (r *Router) dispatchForm(ctx context.Context, draft domain.OrderDraft) Result {
	fields := formFields{
		Name:  draft.Buyer.Name,
		Email: draft.Buyer.Email,
		Phone: draft.Buyer.Phone,
	}

	if errs := r.validation.Validate(fields); len(errs) > 0 {
		missing := make([]string, 0, len(errs))
		for _, e := range errs {
			missing = append(missing, strings.ToLower(e.Field))
		}

		return Result{
			State:  StateRejected,
			Detail: "missing required field: " + strings.Join(missing, ", "),
		}
	}

	if r.endpoint == "" {
		// Explicit local-fallback state: the order is accepted but no remote
		// party was notified. Callers must word their confirmation
		// accordingly.
		r.logger.Info("No form endpoint configured, order captured locally", "qty", draft.Quantity)
		return Result{
			State:     StateSent,
			ViaRemote: false,
			Detail:    "order captured locally, no remote endpoint configured",
		}
	}

	productName := ""
	productID := ""
	if draft.Product != nil {
		productName = draft.Product.Name
		productID = draft.Product.ID
	}

	payload := submission{
		Product:   productName,
		Qty:       draft.Quantity,
		UnitPrice: draft.UnitPrice,
		Total:     draft.Total,
		Name:      draft.Buyer.Name,
		Email:     draft.Buyer.Email,
		Phone:     draft.Buyer.Phone,
		Address:   draft.Buyer.Address,
		Channel:   string(ChannelForm),
		PreOrder:  draft.PreOrder(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{State: StateFailed, Detail: fmt.Sprintf("encode submission: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{State: StateFailed, Detail: fmt.Sprintf("create request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.logger.Error("Form submission failed", "product_id", productID, "error", err)
		return Result{State: StateFailed, Detail: fmt.Sprintf("submit order: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		r.logger.Error("Form endpoint returned non-success status",
			"product_id", productID,
			"status", resp.StatusCode)
		return Result{State: StateFailed, Detail: fmt.Sprintf("unexpected status: %d", resp.StatusCode)}
	}

	r.logger.Info("Order submitted to form endpoint", "product_id", productID, "qty", draft.Quantity)

	return Result{State: StateSent, ViaRemote: true}
}
