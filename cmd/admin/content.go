package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"social-admin-dashboard/internal/content"
	contentMemory "social-admin-dashboard/internal/content/repository/memory"
	"social-admin-dashboard/internal/content/repository/reelapi"
	contentUC "social-admin-dashboard/internal/content/usecase"
)

var contentFlags listFlags

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Content moderation",
}

var contentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reels",
	Long: `List fetches the reels and shows one page.

Filters: contentType (post, comment), mediaType (text, image, video),
status (pending, approved, rejected, reported).

Example:
  admin content list --email admin@example.com --password secret
  admin content list --filter status=pending --search sunset
  admin content list --page 2 --json`,
	RunE: runContentList,
}

func init() {
	contentFlags.register(contentListCmd)
	contentCmd.AddCommand(contentListCmd)
}

func runContentList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sc, err := backendScope(ctx)
	if err != nil {
		return err
	}

	uc := contentUC.New(reelapi.New(client, logger), contentMemory.New(logger), logger, contentUC.Options{
		Debounce:     cliDebounce,
		ConfirmTTL:   time.Minute,
		RegistrySize: 1,
		RegistryTTL:  time.Hour,
	})
	defer uc.CloseSession(sc.SessionID)

	return showScreen(ctx, uc.Bind(ctx, sc), contentFlags, []column[content.ContentItem]{
		{title: "ID", value: content.ItemID},
		{title: "AUTHOR", value: content.ContentItem.AuthorName},
		{title: "DESCRIPTION", value: func(c content.ContentItem) string { return truncate(c.Description, 40) }},
		{title: "TYPE", value: func(c content.ContentItem) string { return deref(c.ContentType) }},
		{title: "MEDIA", value: func(c content.ContentItem) string { return deref(c.MediaType) }},
		{title: "STATUS", value: func(c content.ContentItem) string { return deref(c.Status) }},
		{title: "REPORTS", value: func(c content.ContentItem) string {
			if c.Reports == nil {
				return "0"
			}
			return strconv.Itoa(*c.Reports)
		}},
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
