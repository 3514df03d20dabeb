package types

// Project category values
const (
	CategoryPhotography = "photography"
	CategoryVideography = "videography"
)

// Contact message status values
const (
	MessageUnread  = "unread"
	MessageRead    = "read"
	MessageReplied = "replied"
)

// Custom request status values
const (
	RequestPending  = "pending"
	RequestReviewed = "reviewed"
	RequestQuoted   = "quoted"
	RequestAccepted = "accepted"
)

// Quality level values for custom requests
const (
	QualityStandard  = "standard"
	QualityPremium   = "premium"
	QualityCinematic = "cinematic"
)

// Notification kind values
const (
	NotifySuccess = "success"
	NotifyError   = "error"
	NotifyWarning = "warning"
	NotifyInfo    = "info"
)

// Valid values for validation
var ValidCategories = []string{
	CategoryPhotography, CategoryVideography,
}

var ValidMessageStatuses = []string{
	MessageUnread, MessageRead, MessageReplied,
}

var ValidRequestStatuses = []string{
	RequestPending, RequestReviewed, RequestQuoted, RequestAccepted,
}

var ValidQualityLevels = []string{
	QualityStandard, QualityPremium, QualityCinematic,
}

var ValidNotificationKinds = []string{
	NotifySuccess, NotifyError, NotifyWarning, NotifyInfo,
}

// Helper functions for validation
func IsValidCategory(category string) bool {
	return contains(ValidCategories, category)
}

func IsValidMessageStatus(status string) bool {
	return contains(ValidMessageStatuses, status)
}

func IsValidRequestStatus(status string) bool {
	return contains(ValidRequestStatuses, status)
}

func IsValidQualityLevel(level string) bool {
	return contains(ValidQualityLevels, level)
}

func IsValidNotificationKind(kind string) bool {
	return contains(ValidNotificationKinds, kind)
}

// MessageStatusRank orders contact message statuses along their lifecycle.
// Unknown statuses rank below every valid one.
func MessageStatusRank(status string) int {
	return rank(ValidMessageStatuses, status)
}

// RequestStatusRank orders custom request statuses along their lifecycle.
func RequestStatusRank(status string) int {
	return rank(ValidRequestStatuses, status)
}

func contains(valid []string, value string) bool {
	for _, v := range valid {
		if v == value {
			return true
		}
	}
	return false
}

func rank(ordered []string, value string) int {
	for i, v := range ordered {
		if v == value {
			return i
		}
	}
	return -1
}
