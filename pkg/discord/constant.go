package discord

import "time"

const (
	webhookURLTemplate = "https://discord.com/api/webhooks/%s/%s"

	ColorInfo    = 3447003
	ColorWarning = 16776960
	ColorError   = 15158332

	MaxTitleLen       = 256
	MaxDescriptionLen = 4096
	MaxFieldValueLen  = 1024
	MaxEmbedLength    = 6000
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 2
	DefaultRetryDelay = 500 * time.Millisecond
)

const (
	DefaultUsername = "Member Admin"
	UserAgent       = "member-admin/1.0"
	ReportBugTitle  = "Member Admin Error Report"
)
