package usecase

import (
	"context"
	"fmt"

	"member-admin/internal/alert"
	"member-admin/pkg/discord"
)

func (uc *implUseCase) DispatchFetchFailure(ctx context.Context, input alert.FetchFailureInput) error {
	if input.Err == nil {
		return alert.ErrInvalidInput
	}
	if uc.discord == nil {
		return nil
	}

	fields := []discord.EmbedField{
		buildField("View", input.ViewID, true),
		buildField("Source", input.SourceName, true),
		buildField("Duration", input.Duration.String(), true),
		buildField("Error", input.Err.Error(), false),
	}

	opts := discord.MessageOptions{
		Type:        discord.MessageTypeError,
		Title:       fmt.Sprintf("Member fetch FAILED: %s", input.SourceName),
		Description: "The view was mounted with an empty table.",
		Fields:      fields,
		Timestamp:   input.OccurredAt,
	}

	if err := uc.discord.SendEmbed(ctx, opts); err != nil {
		uc.logger.Errorf(ctx, "internal.alert.usecase.DispatchFetchFailure: %v", err)
		return err
	}

	return nil
}
