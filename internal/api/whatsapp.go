package api

import (
	"context"
	"net/url"
	"strconv"

	"ceybyte/terminal/internal/domain"
)

func (c *Client) WhatsAppConfig(ctx context.Context) Result[domain.WhatsAppConfig] {
	return get[domain.WhatsAppConfig](ctx, c, "/api/whatsapp/config", nil)
}

func (c *Client) UpdateWhatsAppConfig(ctx context.Context, cfg domain.WhatsAppConfig) Result[domain.WhatsAppConfig] {
	return post[domain.WhatsAppConfig](ctx, c, "/api/whatsapp/config", cfg)
}

// SendReceipt delivers a digital receipt to the customer's WhatsApp number.
// Omitting the phone uses the number on the sale's customer record.
func (c *Client) SendReceipt(ctx context.Context, req domain.SendReceiptRequest) Result[domain.MessageResponse] {
	return post[domain.MessageResponse](ctx, c, "/api/whatsapp/send-receipt", req)
}

func (c *Client) SendDailyReport(ctx context.Context) Result[domain.MessageResponse] {
	return post[domain.MessageResponse](ctx, c, "/api/whatsapp/send-daily-report", nil)
}

func (c *Client) SendPaymentReminder(ctx context.Context, req domain.SendReminderRequest) Result[domain.MessageResponse] {
	return post[domain.MessageResponse](ctx, c, "/api/whatsapp/send-reminder", req)
}

func (c *Client) WhatsAppMessages(ctx context.Context, limit int) Result[[]domain.WhatsAppMessage] {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	return get[[]domain.WhatsAppMessage](ctx, c, "/api/whatsapp/messages", query)
}
