package telegram

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/lokal-market/internal/domain/entity"
	"github.com/yourusername/lokal-market/internal/domain/repository"
)

type orderNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewOrderNotifier notifier pesanan ke grup Telegram admin toko
func NewOrderNotifier(token string, chatID int64) (repository.OrderNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat bot Telegram: %w", err)
	}

	log.Printf("🤖 Notifier pesanan aktif sebagai @%s", bot.Self.UserName)
	return &orderNotifier{bot: bot, chatID: chatID}, nil
}

// NotifyOrder meneruskan permintaan pesanan satu produk ke grup admin
func (n *orderNotifier) NotifyOrder(ctx context.Context, product entity.Product) error {
	text := fmt.Sprintf("Halo Admin,\n\nSaya mau pesan: *%s*\nHarga: Rp %s\n\nTerima kasih!",
		product.Title, entity.FormatRupiah(product.Price))

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("gagal mengirim notifikasi pesanan: %w", err)
	}
	return nil
}
