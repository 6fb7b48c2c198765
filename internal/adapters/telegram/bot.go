package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/crypsidex/digest-bot/internal/adapters/config"
	"github.com/crypsidex/digest-bot/internal/cache"
	"github.com/crypsidex/digest-bot/internal/digest"
	"github.com/crypsidex/digest-bot/pkg/logger"
	"github.com/crypsidex/digest-bot/pkg/models"
)

// Menu buttons
const (
	btnRates    = "📊 Курсы"
	btnInsights = "🧠 Инсайды"
)

// Bot serves the rates summary and the insights digest from the shared
// refresh cache. It never blocks on the network beyond the Telegram API
// itself: every reply is computed from the latest published snapshot.
type Bot struct {
	api      *tgbotapi.BotAPI
	store    *cache.Store
	keywords models.KeywordSet
	forecast models.ForecastKeywords
	topN     int
}

// NewBot creates new Telegram bot
func NewBot(cfg *config.TelegramConfig, store *cache.Store, keywords models.KeywordSet, forecast models.ForecastKeywords, topN int) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	logger.Info("telegram bot initialized",
		zap.String("username", api.Self.UserName),
	)

	return &Bot{
		api:      api,
		store:    store,
		keywords: keywords,
		forecast: forecast,
		topN:     topN,
	}, nil
}

// Start starts listening for messages
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	logger.Info("telegram bot started, listening for messages")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			go b.handleMessage(update.Message)
		}
	}
}

// handleMessage processes one incoming message
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if message.IsCommand() {
		switch message.Command() {
		case "start", "help":
			b.reply(chatID, welcomeMessage, mainKeyboard())
		default:
			b.reply(chatID, fmt.Sprintf("❓ Неизвестная команда: /%s", message.Command()), mainKeyboard())
		}
		return
	}

	switch message.Text {
	case btnRates:
		b.reply(chatID, renderRates(b.store.Load()), nil)
	case btnInsights:
		b.sendInsights(chatID)
	default:
		b.reply(chatID, "Нажми кнопку в меню 👇", mainKeyboard())
	}
}

// sendInsights computes the digest from the current snapshot and replies
// with the ranked insights plus the heuristic analysis
func (b *Bot) sendInsights(chatID int64) {
	typing := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err := b.api.Request(typing); err != nil {
		logger.Debug("failed to send chat action", zap.Error(err))
	}

	snap := b.store.Load()
	d, ok := digest.Build(snap, b.keywords, b.forecast, b.topN)
	if !ok {
		b.reply(chatID, noNewsMessage, nil)
		return
	}

	b.reply(chatID, renderDigest(d), nil)
}

// reply sends one HTML message, optionally with a reply keyboard
func (b *Bot) reply(chatID int64, text string, keyboard interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if keyboard != nil {
		msg.ReplyMarkup = keyboard
	}

	if _, err := b.api.Send(msg); err != nil {
		logger.Error("failed to send telegram message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

// mainKeyboard builds the two-button reply keyboard
func mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnRates),
			tgbotapi.NewKeyboardButton(btnInsights),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// Close closes bot connection
func (b *Bot) Close() {
	if b.api != nil {
		b.api.StopReceivingUpdates()
		logger.Info("telegram bot stopped")
	}
}
