package notify

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
)

//go:generate mockgen -source=notify.go -destination=mock_notify.go -package=notify

var ErrRecipientNotFound = errors.New("notification recipient not found")

type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type UserFinder interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

// NewBot connects to the Bot API through client. The token is checked with
// a getMe call.
func NewBot(token string, client tgbotapi.HTTPClient) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("connect telegram bot: %w", err)
	}
	zap.L().Info("Telegram bot authorized", zap.String("username", bot.Self.UserName))
	return bot, nil
}

type Telegram struct {
	sender Sender
	users  UserFinder
}

func NewTelegram(sender Sender, users UserFinder) *Telegram {
	return &Telegram{sender: sender, users: users}
}

// NotifyBeneficiary sends the bonus message to the beneficiary's Telegram
// chat. Users that never linked Telegram are skipped without error.
func (t *Telegram) NotifyBeneficiary(ctx context.Context, userID int, amount decimal.Decimal, buyerName string, level int) error {
	user, err := t.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("load recipient %d: %w", userID, err)
	}
	if user == nil {
		return fmt.Errorf("%w: %d", ErrRecipientNotFound, userID)
	}
	if user.TelegramID == nil {
		zap.L().Info("User has no telegram chat, bonus message skipped", zap.Int("userID", userID))
		return nil
	}

	msg := tgbotapi.NewMessage(*user.TelegramID, BonusMessage(buyerName, level, amount))

	done := make(chan error, 1)
	go func() {
		_, err := t.sender.Send(msg)
		done <- err
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("send bonus message to %d: %w", userID, ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send bonus message to %d: %w", userID, err)
		}
	}
	zap.L().Debug("Bonus message sent", zap.Int("userID", userID), zap.Int("level", level))
	return nil
}

func BonusMessage(buyerName string, level int, amount decimal.Decimal) string {
	return fmt.Sprintf(
		"💰 Начислен реферальный бонус!\n\n"+
			"👤 От: %s (реферал %d-го уровня)\n"+
			"💵 Сумма: %s руб.\n"+
			"📈 Уровень: %d\n\n"+
			"💡 Бонус будет зачислен на ваш баланс после обработки\n"+
			"📊 Посмотреть все бонусы: /bonuses",
		buyerName, level, amount.StringFixed(2), level,
	)
}

// Log is used when no bot token is configured.
type Log struct{}

func (Log) NotifyBeneficiary(_ context.Context, userID int, amount decimal.Decimal, buyerName string, level int) error {
	zap.L().Info("Bonus accrued",
		zap.Int("userID", userID),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("buyer", buyerName),
		zap.Int("level", level),
	)
	return nil
}
