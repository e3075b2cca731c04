package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// DefaultConfig returns the default Discord config.
func DefaultConfig() Config {
	return Config{
		Timeout:         DefaultTimeout,
		RetryCount:      DefaultRetryCount,
		RetryDelay:      DefaultRetryDelay,
		DefaultUsername: DefaultUsername,
	}
}

func (d *discordImpl) webhookURL() string {
	if d.config.BaseURL != "" {
		return fmt.Sprintf("%s/%s/%s", d.config.BaseURL, d.id, d.token)
	}
	return fmt.Sprintf(webhookURLTemplate, d.id, d.token)
}

func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) sendWithRetry(ctx context.Context, payload *WebhookPayload) error {
	var lastErr error
	for attempt := 0; attempt <= d.config.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.config.RetryDelay):
			}
		}
		err := d.sendRequest(ctx, payload)
		if err == nil {
			return nil
		}
		lastErr = err
		if d.l != nil {
			d.l.Warnf(ctx, "pkg.discord.sendWithRetry: attempt %d failed: %v", attempt+1, err)
		}
	}
	return fmt.Errorf("failed after %d attempts, last error: %w", d.config.RetryCount+1, lastErr)
}

func (d *discordImpl) sendRequest(ctx context.Context, payload *WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("discord webhook returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

func colorFor(t MessageType) int {
	switch t {
	case MessageTypeWarning:
		return ColorWarning
	case MessageTypeError:
		return ColorError
	default:
		return ColorInfo
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	embed := Embed{
		Title:       truncate(options.Title, MaxTitleLen),
		Description: truncate(options.Description, MaxDescriptionLen),
		Color:       colorFor(options.Type),
		Fields:      options.Fields,
	}
	if !options.Timestamp.IsZero() {
		embed.Timestamp = options.Timestamp.Format(time.RFC3339)
	}

	size := len(embed.Title) + len(embed.Description)
	for _, f := range embed.Fields {
		size += len(f.Name) + len(f.Value)
	}
	if size > MaxEmbedLength {
		return fmt.Errorf("embed too long: %d characters (max: %d)", size, MaxEmbedLength)
	}

	return d.sendWithRetry(ctx, &WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds:   []Embed{embed},
	})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	var fields []EmbedField
	if err != nil {
		fields = append(fields, EmbedField{
			Name:  "Error",
			Value: truncate(err.Error(), MaxFieldValueLen),
		})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
		Fields:      fields,
		Timestamp:   time.Now(),
	})
}

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       ReportBugTitle,
		Description: fmt.Sprintf("```%s```", truncate(message, MaxDescriptionLen-6)),
		Timestamp:   time.Now(),
	})
}
