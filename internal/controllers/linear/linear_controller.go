package linear

import (
	"context"

	"github.com/DIMO-Network/linear-reflect-relay/internal/clients/reflectapi"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	deliveryHeader = "Linear-Delivery"
	eventHeader    = "Linear-Event"

	statusOK      = "Ok."
	msgBadRequest = "Bad request."
)

// NotesClient creates notes in the downstream note-taking service.
type NotesClient interface {
	CreateNote(ctx context.Context, note reflectapi.Note) error
}

// DispatchResult is the outcome of one best-effort note dispatch.
// It is logged and then dropped: a failed dispatch never changes the webhook response.
type DispatchResult struct {
	Subject string
	Err     error
}

// LinearController receives Linear webhooks and forwards created issues as notes.
type LinearController struct {
	verifier *Verifier
	notes    NotesClient
}

// NewLinearController creates a new LinearController.
func NewLinearController(webhookSecret string, notes NotesClient) *LinearController {
	return &LinearController{
		verifier: NewVerifier(webhookSecret),
		notes:    notes,
	}
}

// HandleWebhook godoc
// @Summary      Receive a Linear webhook
// @Description  Verifies the linear-signature header against the raw body and, for issue create events, creates a note. Every request with a valid signature is acknowledged with 200, including payloads that are ignored.
// @Tags         Webhooks
// @Accept       json
// @Produce      json
// @Param        linear-signature  header    string          true  "hex HMAC-SHA256 of the body"
// @Success      200               {object}  StatusResponse  "Webhook acknowledged"
// @Failure      400               {object}  MessageResponse "Invalid signature"
// @Router       / [post]
func (l *LinearController) HandleWebhook(c *fiber.Ctx) error {
	delivery := c.Get(deliveryHeader)
	if delivery == "" {
		delivery = uuid.NewString()
	}
	logger := zerolog.Ctx(c.UserContext()).With().
		Str("linear-delivery", delivery).
		Str("linear-event", c.Get(eventHeader)).
		Logger()

	// fiber's Body() decodes Content-Encoding; the signature covers the bytes as sent
	body := c.Request().Body()
	if err := l.verifier.Verify(body, c.Get(SignatureHeader)); err != nil {
		logger.Warn().Err(err).Msg("Rejected webhook")
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: msgBadRequest})
	}

	// TODO: unparseable JSON is acknowledged like any other shape mismatch; revisit whether it should be a 400.
	event, err := ParseIssueEvent(body)
	if err != nil {
		logger.Info().Err(err).Msg("Ignoring webhook payload")
		return acknowledge(c)
	}

	logger = logger.With().Str("action", event.Action).Logger()
	if !event.ShouldCreateNote() {
		logger.Debug().Msg("No note needed for action")
		return acknowledge(c)
	}

	logger = logger.With().Str("identifier", event.Issue.Identifier).Logger()
	result := l.dispatchNote(c.UserContext(), *event.Issue)
	logDispatch(logger, result)

	return acknowledge(c)
}

// dispatchNote makes a single attempt to create the note for issue.
func (l *LinearController) dispatchNote(ctx context.Context, issue IssueData) DispatchResult {
	note := BuildNote(issue)
	return DispatchResult{
		Subject: note.Subject,
		Err:     l.notes.CreateNote(ctx, note),
	}
}

func logDispatch(logger zerolog.Logger, result DispatchResult) {
	if result.Err != nil {
		logger.Error().Err(result.Err).Str("subject", result.Subject).Msg("Failed to create note")
		return
	}
	logger.Info().Str("subject", result.Subject).Msg("Created note")
}

func acknowledge(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(StatusResponse{Status: statusOK})
}
