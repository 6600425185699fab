package discord

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/domain"
)

// guildExperiencePreviewLen caps the free-form history shown in the
// new-application embed
const guildExperiencePreviewLen = 200

// deadlineLayout formats voting deadlines for embed fields
const deadlineLayout = "2006-01-02 15:04:05 UTC"

// RenderEvent builds the webhook message announcing a notification event.
// Unknown event types render as a generic embed rather than failing, so a
// forward-compatible consumer never poisons its queue on a new type.
func RenderEvent(event *domain.NotificationEvent) (*WebhookPayload, error) {
	switch event.EventType {
	case domain.NotificationNewApplication:
		p, err := decodePayload[domain.ApplicationPayload](event)
		if err != nil {
			return nil, err
		}
		return buildNewApplication(event, p), nil

	case domain.NotificationVotingOpened:
		p, err := decodePayload[domain.VotingOpenedPayload](event)
		if err != nil {
			return nil, err
		}
		return buildVotingOpened(event, p), nil

	case domain.NotificationVotingReminder:
		p, err := decodePayload[domain.VotingReminderPayload](event)
		if err != nil {
			return nil, err
		}
		return buildVotingReminder(event, p), nil

	case domain.NotificationVotingClosed:
		p, err := decodePayload[domain.VotingClosedPayload](event)
		if err != nil {
			return nil, err
		}
		return buildVotingClosed(event, p), nil

	case domain.NotificationApplicationApproved:
		p, err := decodePayload[domain.ApplicationPayload](event)
		if err != nil {
			return nil, err
		}
		return buildApplicationDecision(event, p, true), nil

	case domain.NotificationApplicationRejected:
		p, err := decodePayload[domain.ApplicationPayload](event)
		if err != nil {
			return nil, err
		}
		return buildApplicationDecision(event, p, false), nil

	case domain.NotificationCharacterCreated:
		p, err := decodePayload[domain.CharacterPayload](event)
		if err != nil {
			return nil, err
		}
		if p.ApplicationID != nil {
			return buildMemberWelcome(event, p), nil
		}
		return buildCharacterCreated(event, p), nil

	case domain.NotificationCharacterTransfer:
		p, err := decodePayload[domain.CharacterTransferPayload](event)
		if err != nil {
			return nil, err
		}
		return buildCharacterTransfer(event, p), nil

	case domain.NotificationLootAwarded:
		p, err := decodePayload[domain.LootAwardedPayload](event)
		if err != nil {
			return nil, err
		}
		return buildLootAwarded(event, p), nil

	case domain.NotificationMemberStatus:
		p, err := decodePayload[domain.MemberStatusPayload](event)
		if err != nil {
			return nil, err
		}
		return buildMemberStatus(event, p), nil

	case domain.NotificationDiscordLinked:
		p, err := decodePayload[domain.DiscordLinkPayload](event)
		if err != nil {
			return nil, err
		}
		return buildDiscordLinked(event, p), nil

	case domain.NotificationDiscordUnlinked:
		p, err := decodePayload[domain.DiscordLinkPayload](event)
		if err != nil {
			return nil, err
		}
		return buildDiscordUnlinked(event, p), nil

	case domain.NotificationDailySummary:
		p, err := decodePayload[domain.DailySummaryPayload](event)
		if err != nil {
			return nil, err
		}
		return buildDailySummary(event, p), nil

	case domain.NotificationError:
		p, err := decodePayload[domain.ErrorPayload](event)
		if err != nil {
			return nil, err
		}
		return buildError(event, p), nil

	default:
		return buildUnknown(event), nil
	}
}

func decodePayload[T any](event *domain.NotificationEvent) (T, error) {
	var p T
	if err := json.Unmarshal(event.Payload, &p); err != nil {
		return p, fmt.Errorf("failed to decode %s payload: %w", event.EventType, err)
	}
	return p, nil
}

func buildNewApplication(event *domain.NotificationEvent, p domain.ApplicationPayload) *WebhookPayload {
	fields := []EmbedField{
		{Name: "Character", Value: fmt.Sprintf("Level %d %s", p.CharacterLevel, p.CharacterClass), Inline: true},
		{Name: "Applicant", Value: p.ApplicantName, Inline: true},
		{Name: "Discord", Value: p.DiscordUsername, Inline: true},
		{Name: "Status", Value: "⏳ Awaiting Officer Review"},
	}

	if p.GuildExperience != "" {
		preview := p.GuildExperience
		if r := []rune(preview); len(r) > guildExperiencePreviewLen {
			preview = string(r[:guildExperiencePreviewLen]) + "..."
		}
		fields = append(fields, EmbedField{
			Name:  "Guild Experience",
			Value: fmt.Sprintf("```%s```", preview),
		})
	}

	timestamp := p.SubmittedAt
	if timestamp.IsZero() {
		timestamp = event.Timestamp
	}

	return &WebhookPayload{
		Content: "📋 **Officers**: New application requires review!",
		Embeds: []Embed{{
			Title:       "🆕 New Guild Application",
			Description: fmt.Sprintf("**%s** has submitted an application", p.CharacterName),
			Color:       ColorNewApplication,
			Fields:      fields,
			Footer:      &EmbedFooter{Text: fmt.Sprintf("Application ID: %d", p.ApplicationID)},
			Timestamp:   formatTimestamp(timestamp),
		}},
	}
}

func buildVotingOpened(event *domain.NotificationEvent, p domain.VotingOpenedPayload) *WebhookPayload {
	hoursRemaining := p.VotingDeadline.Sub(event.Timestamp).Hours()

	return &WebhookPayload{
		Content: "🗳️ **@everyone**: Voting is now open! Eligible members please cast your votes.",
		Embeds: []Embed{{
			Title:       "🗳️ Voting Period Opened",
			Description: fmt.Sprintf("Voting is now open for **%s**", p.CharacterName),
			Color:       ColorVotingOpen,
			Fields: []EmbedField{
				{Name: "Character", Value: fmt.Sprintf("Level %d %s", p.CharacterLevel, p.CharacterClass), Inline: true},
				{Name: "Applicant", Value: p.ApplicantName, Inline: true},
				{Name: "Voting Deadline", Value: fmt.Sprintf("%s\n(%.1f hours remaining)", p.VotingDeadline.UTC().Format(deadlineLayout), hoursRemaining)},
				{Name: "Eligibility", Value: "✅ Members with ≥15% attendance (30 days)"},
			},
			Footer: &EmbedFooter{
				Text: fmt.Sprintf("Application ID: %d • Vote weights: 15-50%%=1.0x, 51-75%%=1.5x, 76%%+=2.0x", p.ApplicationID),
			},
			Timestamp: formatTimestamp(event.Timestamp),
		}},
	}
}

func buildVotingReminder(event *domain.NotificationEvent, p domain.VotingReminderPayload) *WebhookPayload {
	return &WebhookPayload{
		Content: fmt.Sprintf("⏰ **Reminder**: %dh remaining to vote on %s's application!", p.HoursRemaining, p.CharacterName),
		Embeds: []Embed{{
			Title:       fmt.Sprintf("⏰ Voting Reminder - %dh Remaining", p.HoursRemaining),
			Description: fmt.Sprintf("Voting deadline approaching for **%s**", p.CharacterName),
			Color:       ColorVotingReminder,
			Fields: []EmbedField{
				{Name: "Deadline", Value: fmt.Sprintf("%s\n**%d hours remaining**", p.VotingDeadline.UTC().Format(deadlineLayout), p.HoursRemaining), Inline: true},
				{Name: "Current Votes", Value: fmt.Sprintf("%d votes cast", p.VotesCast), Inline: true},
				{Name: "Action Required", Value: "🗳️ Cast your vote if you haven't already!"},
			},
			Footer:    &EmbedFooter{Text: fmt.Sprintf("Application ID: %d", p.ApplicationID)},
			Timestamp: formatTimestamp(event.Timestamp),
		}},
	}
}

func buildVotingClosed(event *domain.NotificationEvent, p domain.VotingClosedPayload) *WebhookPayload {
	color := ColorRejected
	statusEmoji := "❌"
	statusText := "REJECTED"
	if p.Approved {
		color = ColorApproved
		statusEmoji = "✅"
		statusText = "APPROVED"
	}

	return &WebhookPayload{
		Content: fmt.Sprintf("🗳️ **Voting Results**: %s - %s", p.CharacterName, statusText),
		Embeds: []Embed{{
			Title:       fmt.Sprintf("%s Voting Closed - %s", statusEmoji, statusText),
			Description: fmt.Sprintf("**%s** - %s", p.CharacterName, p.Reason),
			Color:       color,
			Fields: []EmbedField{
				{
					Name: "Vote Results",
					Value: fmt.Sprintf("**Approval**: %s%%\n**Total Votes**: %d\n**Vote Weight**: %s",
						p.ApprovalPercentage.StringFixed(1), p.TotalVotes, p.TotalWeight.StringFixed(1)),
					Inline: true,
				},
				{
					Name: "Vote Breakdown",
					Value: fmt.Sprintf("✅ Yes: %d (%s)\n❌ No: %d (%s)\n⚪ Abstain: %d (%s)",
						p.YesVotes, p.YesWeight.StringFixed(1),
						p.NoVotes, p.NoWeight.StringFixed(1),
						p.AbstainVotes, p.AbstainWeight.StringFixed(1)),
					Inline: true,
				},
				{
					Name: "Requirements",
					Value: fmt.Sprintf("Min Votes: %d/%d %s\nApproval: %s%%/%s%% %s",
						p.TotalVotes, p.MinimumVotes, checkmark(p.TotalVotes >= p.MinimumVotes),
						p.ApprovalPercentage.StringFixed(1), p.ApprovalThreshold.String(),
						checkmark(p.ApprovalPercentage.GreaterThanOrEqual(p.ApprovalThreshold))),
				},
			},
			Footer:    &EmbedFooter{Text: fmt.Sprintf("Application ID: %d", p.ApplicationID)},
			Timestamp: formatTimestamp(event.Timestamp),
		}},
	}
}

func buildApplicationDecision(event *domain.NotificationEvent, p domain.ApplicationPayload, approved bool) *WebhookPayload {
	color := ColorRejected
	title := "❌ Application Rejected"
	description := fmt.Sprintf("**%s**'s application has been rejected", p.CharacterName)
	if approved {
		color = ColorApproved
		title = "✅ Application Approved"
		description = fmt.Sprintf("**%s**'s application has been approved", p.CharacterName)
	}

	return &WebhookPayload{
		Embeds: []Embed{{
			Title:       title,
			Description: description,
			Color:       color,
			Fields: []EmbedField{
				{Name: "Character", Value: fmt.Sprintf("Level %d %s", p.CharacterLevel, p.CharacterClass), Inline: true},
				{Name: "Applicant", Value: p.ApplicantName, Inline: true},
			},
			Footer:    &EmbedFooter{Text: fmt.Sprintf("Application ID: %d", p.ApplicationID)},
			Timestamp: formatTimestamp(event.Timestamp),
		}},
	}
}

func buildMemberWelcome(event *domain.NotificationEvent, p domain.CharacterPayload) *WebhookPayload {
	checklist := fmt.Sprintf("✅ User Account Created\n✅ Character Record Added\n%s DKP Initialized\n%s Groups Assigned",
		checkmark(p.DKPInitialized), checkmark(p.GroupsAssigned))

	processedBy := p.ProcessedBy
	if processedBy == "" {
		processedBy = "system"
	}

	return &WebhookPayload{
		Content: fmt.Sprintf("🎊 **Welcome %s** to the guild! Please check your access and DKP points.", p.CharacterName),
		Embeds: []Embed{{
			Title:       "🎉 Welcome New Guild Member!",
			Description: fmt.Sprintf("**%s** has been added to the guild", p.CharacterName),
			Color:       ColorCharacterCreated,
			Fields: []EmbedField{
				{Name: "Character", Value: fmt.Sprintf("Level %d %s", p.Level, p.Class), Inline: true},
				{Name: "User Account", Value: p.OwnerName, Inline: true},
				{Name: "Setup Complete", Value: checklist},
			},
			Footer: &EmbedFooter{
				Text: fmt.Sprintf("Application ID: %d • Processed by: %s", *p.ApplicationID, processedBy),
			},
			Timestamp: formatTimestamp(event.Timestamp),
		}},
	}
}

func buildCharacterCreated(event *domain.NotificationEvent, p domain.CharacterPayload) *WebhookPayload {
	return &WebhookPayload{
		Embeds: []Embed{{
			Title:       "⭐ New Character Created",
			Description: fmt.Sprintf("**%s** has been created", p.CharacterName),
			Color:       ColorCharacterNew,
			Fields: []EmbedField{
				{Name: "Class", Value: p.Class, Inline: true},
				{Name: "Level", Value: fmt.Sprintf("%d", p.Level), Inline: true},
				{Name: "Owner", Value: p.OwnerName, Inline: true},
			},
			Timestamp: formatTimestamp(event.Timestamp),
		}},
	}
}

func buildCharacterTransfer(event *domain.NotificationEvent, p domain.CharacterTransferPayload) *WebhookPayload {
	previousOwner := p.PreviousOwnerName
	if previousOwner == "" {
		previousOwner = "Unknown"
	}
	transferredBy := p.TransferredBy
	if transferredBy == "" {
		transferredBy = "system"
	}

	return &WebhookPayload{
		Embeds: []Embed{{
			Title:       "↔️ Character Transferred",
			Description: fmt.Sprintf("**%s** has been transferred", p.CharacterName),
			Color:       ColorCharacterTransfer,
			Fields: []EmbedField{
				{Name: "Previous Owner", Value: previousOwner, Inline: true},
				{Name: "New Owner", Value: p.OwnerName, Inline: true},
				{Name: "Reason", Value: p.Reason, Inline: true},
				{Name: "Transferred By", Value: transferredBy, Inline: true},
			},
			Timestamp: formatTimestamp(event.Timestamp),
		}},
	}
}

func buildLootAwarded(event *domain.NotificationEvent, p domain.LootAwardedPayload) *WebhookPayload {
	raidTitle := p.RaidTitle
	if raidTitle == "" {
		raidTitle = "Unknown"
	}
	distributedBy := p.DistributedBy
	if distributedBy == "" {
		distributedBy = "system"
	}

	return &WebhookPayload{
		Embeds: []Embed{{
			Title:       "🎁 Loot Awarded",
			Description: fmt.Sprintf("**%s** awarded to **%s**", p.ItemName, p.CharacterName),
			Color:       ColorLootAwarded,
			Fields: []EmbedField{
				{Name: "Cost", Value: fmt.Sprintf("%s DKP", p.PointCost.String()), Inline: true},
				{Name: "Quantity", Value: fmt.Sprintf("%d", p.Quantity), Inline: true},
				{Name: "Total Cost", Value: fmt.Sprintf("%s DKP", p.TotalCost.String()), Inline: true},
				{Name: "Raid", Value: raidTitle, Inline: true},
				{Name: "Distributed By", Value: distributedBy, Inline: true},
			},
			Timestamp: formatTimestamp(event.Timestamp),
		}},
	}
}

func buildMemberStatus(event *domain.NotificationEvent, p domain.MemberStatusPayload) *WebhookPayload {
	status := "deactivated"
	statusValue := "Inactive"
	if p.IsActive {
		status = "activated"
		statusValue = "Active"
	}

	fields := []EmbedField{
		{Name: "Status", Value: statusValue, Inline: true},
		{Name: "Characters Updated", Value: fmt.Sprintf("%d", p.CharactersUpdated), Inline: true},
	}
	if p.Reason != "" {
		fields = append(fields, EmbedField{Name: "Reason", Value: p.Reason})
	}

	return &WebhookPayload{
		Embeds: []Embed{{
			Title:       "🔄 Member Status Changed",
			Description: fmt.Sprintf("**%s** has been %s", p.Username, status),
			Color:       ColorMemberStatus,
			Fields:      fields,
			Timestamp:   formatTimestamp(event.Timestamp),
		}},
	}
}

func buildDiscordLinked(event *domain.NotificationEvent, p domain.DiscordLinkPayload) *WebhookPayload {
	return &WebhookPayload{
		Embeds: []Embed{{
			Title:       "🔗 Discord Account Linked",
			Description: fmt.Sprintf("**%s** has linked their Discord account", p.Username),
			Color:       ColorLinked,
			Fields: []EmbedField{
				{Name: "Discord ID", Value: fmt.Sprintf("`%s`", p.DiscordID), Inline: true},
				{Name: "Application User", Value: p.Username, Inline: true},
			},
			Timestamp: formatTimestamp(event.Timestamp),
		}},
	}
}

func buildDiscordUnlinked(event *domain.NotificationEvent, p domain.DiscordLinkPayload) *WebhookPayload {
	return &WebhookPayload{
		Embeds: []Embed{{
			Title:       "🔓 Discord Account Unlinked",
			Description: fmt.Sprintf("**%s** has unlinked their Discord account", p.Username),
			Color:       ColorUnlinked,
			Fields: []EmbedField{
				{Name: "Previous Discord ID", Value: fmt.Sprintf("`%s`", p.DiscordID), Inline: true},
				{Name: "Application User", Value: p.Username, Inline: true},
			},
			Timestamp: formatTimestamp(event.Timestamp),
		}},
	}
}

func buildDailySummary(event *domain.NotificationEvent, p domain.DailySummaryPayload) *WebhookPayload {
	date := p.Date
	if date == "" {
		date = event.Timestamp.UTC().Format("2006-01-02")
	}

	return &WebhookPayload{
		Embeds: []Embed{{
			Title:       "📊 Daily Recruitment Summary",
			Description: fmt.Sprintf("Recruitment activity for %s", date),
			Color:       ColorInfo,
			Fields: []EmbedField{
				{Name: "New Applications", Value: fmt.Sprintf("%d", p.NewApplications), Inline: true},
				{Name: "Voting Periods Opened", Value: fmt.Sprintf("%d", p.VotingOpened), Inline: true},
				{Name: "Voting Periods Closed", Value: fmt.Sprintf("%d", p.VotingClosed), Inline: true},
				{Name: "Applications Approved", Value: fmt.Sprintf("%d", p.Approved), Inline: true},
				{Name: "Applications Rejected", Value: fmt.Sprintf("%d", p.Rejected), Inline: true},
				{Name: "Characters Created", Value: fmt.Sprintf("%d", p.CharactersCreated), Inline: true},
			},
			Footer:    &EmbedFooter{Text: "Automated daily summary"},
			Timestamp: formatTimestamp(event.Timestamp),
		}},
	}
}

func buildError(event *domain.NotificationEvent, p domain.ErrorPayload) *WebhookPayload {
	var fields []EmbedField
	if p.Source != "" {
		fields = append(fields, EmbedField{Name: "Source", Value: p.Source, Inline: true})
	}
	if p.Context != "" {
		fields = append(fields, EmbedField{Name: "Context", Value: p.Context, Inline: true})
	}

	return &WebhookPayload{
		Content: "🚨 **System Alert**: Recruitment system error detected",
		Embeds: []Embed{{
			Title:       "⚠️ Recruitment System Error",
			Description: p.Message,
			Color:       ColorError,
			Fields:      fields,
			Timestamp:   formatTimestamp(event.Timestamp),
		}},
	}
}

// buildUnknown is the forward-compatibility fallback: the raw payload is
// shown in a code block so an unrecognized event is still visible in the
// channel instead of silently dropped.
func buildUnknown(event *domain.NotificationEvent) *WebhookPayload {
	data := string(event.Payload)
	if r := []rune(data); len(r) > 1000 {
		data = string(r[:1000]) + "..."
	}

	return &WebhookPayload{
		Embeds: []Embed{{
			Title:       fmt.Sprintf("Notification: %s", event.EventType),
			Description: fmt.Sprintf("Event data: ```json\n%s\n```", data),
			Color:       ColorDefault,
			Timestamp:   formatTimestamp(event.Timestamp),
		}},
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func checkmark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}
