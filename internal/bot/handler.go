package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/sirupsen/logrus"

	"listbase/internal/app"
)

// favCallbackPrefix marks inline-button callbacks that toggle a favorite.
const favCallbackPrefix = "fav:"

// Handler serves the catalog over Telegram, one session per Telegram user.
type Handler struct {
	bot      *tgbot.Bot
	sessions *app.Manager
	log      logrus.FieldLogger
}

// NewHandler creates a new bot handler instance.
func NewHandler(token string, sessions *app.Manager, logger logrus.FieldLogger) (*Handler, error) {
	log := logger.WithField("component", "bot_handler")

	h := &Handler{
		sessions: sessions,
		log:      log,
	}

	b, err := tgbot.New(token, tgbot.WithDefaultHandler(h.messageHandler))
	if err != nil {
		log.WithError(err).Error("Failed to create Telegram bot instance")
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	h.bot = b

	h.bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, favCallbackPrefix, tgbot.MatchTypePrefix, h.favoriteCallback)

	log.Info("Telegram bot handler initialized")
	return h, nil
}

// Start begins polling for updates from Telegram.
// This function blocks until the context is cancelled.
func (h *Handler) Start(ctx context.Context) {
	h.log.Info("Starting Telegram bot polling...")
	h.bot.Start(ctx)
	h.log.Info("Telegram bot polling stopped.")
}

// messageHandler routes every text message through respond.
func (h *Handler) messageHandler(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	msg := update.Message
	userID := strconv.FormatInt(msg.From.ID, 10)
	log := h.log.WithFields(logrus.Fields{
		"user_id": userID,
		"text":    msg.Text,
	})
	log.Debug("Received message")

	r := respond(ctx, h.sessions.Session(userID), msg.Text)
	h.send(ctx, b, msg.Chat.ID, r, log)
}

// favoriteCallback handles the save/unsave inline button.
func (h *Handler) favoriteCallback(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	cq := update.CallbackQuery
	if cq == nil {
		return
	}
	userID := strconv.FormatInt(cq.From.ID, 10)
	itemID := strings.TrimPrefix(cq.Data, favCallbackPrefix)
	log := h.log.WithFields(logrus.Fields{
		"user_id": userID,
		"item_id": itemID,
	})

	r := toggleFavorite(h.sessions.Session(userID), itemID)

	if _, err := b.AnswerCallbackQuery(ctx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: cq.ID,
		Text:            r.Text,
	}); err != nil {
		log.WithError(err).Warn("Failed to answer callback query")
	}

	// Private chats share the user's id
	h.send(ctx, b, cq.From.ID, r, log)
}

func (h *Handler) send(ctx context.Context, b *tgbot.Bot, chatID int64, r reply, log logrus.FieldLogger) {
	params := &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   r.Text,
	}
	if r.FavoriteID != "" {
		params.ReplyMarkup = favoriteKeyboard(r.FavoriteID, r.Saved)
	}
	if _, err := b.SendMessage(ctx, params); err != nil {
		log.WithError(err).Error("Failed to send message")
	}
}

func favoriteKeyboard(itemID string, saved bool) *models.InlineKeyboardMarkup {
	label := "☆ Save"
	if saved {
		label = "★ Unsave"
	}
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: label, CallbackData: favCallbackPrefix + itemID}},
		},
	}
}
