package response

import (
	"context"
	"fmt"
	"log"
	"strings"

	"member-admin/pkg/discord"

	"github.com/gin-gonic/gin"
)

func sendDiscordMessageAsync(d discord.IDiscord, message string) {
	go func() {
		for _, msg := range splitMessageForDiscord(message) {
			if err := d.ReportBug(context.Background(), msg); err != nil {
				// Fallback to the standard logger; the request context is gone by now.
				log.Printf("pkg.response.sendDiscordMessageAsync.ReportBug: %v\n", err)
			}
		}
	}()
}

func splitMessageForDiscord(message string) []string {
	var chunks []string
	var current strings.Builder
	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		if current.Len()+len(line) > DiscordMaxMessageLen {
			if current.Len() > 0 {
				chunks = append(chunks, strings.TrimSuffix(current.String(), "\n"))
				current.Reset()
			}
			for len(line) > DiscordMaxMessageLen {
				chunks = append(chunks, line[:DiscordMaxMessageLen])
				line = line[DiscordMaxMessageLen:]
			}
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSuffix(current.String(), "\n"))
	}
	return chunks
}

func buildInternalServerErrorReport(c *gin.Context, errString string, backtrace []string) string {
	var sb strings.Builder
	sb.WriteString("============= MEMBER ADMIN ERROR =============\n")
	if c != nil && c.Request != nil {
		sb.WriteString(fmt.Sprintf("Route   : %s\n", c.Request.URL.String()))
		sb.WriteString(fmt.Sprintf("Method  : %s\n", c.Request.Method))
		if params := c.Request.URL.Query().Encode(); params != "" {
			sb.WriteString(fmt.Sprintf("Params  : %s\n", params))
		}
		sb.WriteString("----------------------------------------------\n")
	}
	sb.WriteString(fmt.Sprintf("Error   : %s\n", errString))
	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			sb.WriteString(fmt.Sprintf("[%d]: %s\n", i, line))
		}
	}
	sb.WriteString("==============================================\n")
	return sb.String()
}
