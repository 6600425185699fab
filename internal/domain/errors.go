package domain

import "errors"

var (
	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when creating a user whose username already exists
	ErrUsernameTaken = errors.New("username already taken")

	// ErrCharacterNotFound is returned when a character is not found
	ErrCharacterNotFound = errors.New("character not found")

	// ErrCharacterNameTaken is returned when creating a character whose name already exists
	ErrCharacterNameTaken = errors.New("character name already taken")

	// ErrAltOfAlt is returned when linking an alt to a character that is itself an alt
	ErrAltOfAlt = errors.New("alt characters cannot have alts")

	// ErrSameOwner is returned when a character transfer names the current owner as the new owner
	ErrSameOwner = errors.New("previous owner and new owner cannot be the same")

	// ErrDiscordAlreadyLinked is returned when a Discord ID or user is already linked
	ErrDiscordAlreadyLinked = errors.New("discord account already linked")

	// ErrInvalidDiscordID is returned when a Discord ID is not a 10-20 digit numeric string
	ErrInvalidDiscordID = errors.New("invalid discord id")

	// ErrRankNotFound is returned when a rank is not found
	ErrRankNotFound = errors.New("rank not found")

	// ErrInsufficientBalance is returned when a purchase or deduction exceeds the user's balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAdjustmentSign is returned when an adjustment's sign violates its type
	ErrInvalidAdjustmentSign = errors.New("adjustment sign not valid for type")

	// ErrAdjustmentLocked is returned when deleting a locked adjustment
	ErrAdjustmentLocked = errors.New("adjustment is locked")

	// ErrAdjustmentNotFound is returned when a point adjustment is not found
	ErrAdjustmentNotFound = errors.New("point adjustment not found")

	// ErrDuplicateAttendance is returned when recording attendance twice for the same raid and user
	ErrDuplicateAttendance = errors.New("attendance already recorded for this raid")

	// ErrPointsAlreadyAwarded is returned when awarding points for a raid that already paid out
	ErrPointsAlreadyAwarded = errors.New("points already awarded for this raid")

	// ErrRaidNotCompleted is returned when awarding points for a raid that is not completed
	ErrRaidNotCompleted = errors.New("raid is not completed")

	// ErrRaidNotFound is returned when a raid is not found
	ErrRaidNotFound = errors.New("raid not found")

	// ErrEventNotFound is returned when a raid event template is not found
	ErrEventNotFound = errors.New("event not found")

	// ErrItemNotFound is returned when an item is not found
	ErrItemNotFound = errors.New("item not found")

	// ErrDistributionNotFound is returned when a loot distribution is not found
	ErrDistributionNotFound = errors.New("loot distribution not found")

	// ErrApplicationNotFound is returned when an application is not found
	ErrApplicationNotFound = errors.New("application not found")

	// ErrInvalidStateTransition is returned when an application operation runs from the wrong status
	ErrInvalidStateTransition = errors.New("invalid application state transition")

	// ErrVotingClosed is returned when casting a vote outside an open voting period
	ErrVotingClosed = errors.New("voting period is not open")

	// ErrNotEligibleToVote is returned when the voter's attendance is below the eligibility threshold
	ErrNotEligibleToVote = errors.New("voter does not meet the attendance eligibility threshold")

	// ErrAlreadyProcessed is returned when provisioning an application that already has a user account
	ErrAlreadyProcessed = errors.New("application has already been processed")
)
