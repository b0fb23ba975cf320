package session

import (
	"strings"

	"github.com/Aftab073/Ai-search-tool/library/search/client"
)

// User facing messages.
const (
	MsgEmptyQuery    = "Please enter a search query."
	MsgFetchFailed   = "Failed to fetch results. Please try again."
	MsgNoResponse    = "No response from server. Please check your connection."
	MsgGenericFailed = "An error occurred. Please try again."
)

// SearchErrorMessage turns a failed search into the text shown to the user.
func SearchErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	apiErr, ok := client.AsAPIError(err)
	if !ok {
		return MsgGenericFailed
	}

	switch apiErr.Kind {
	case client.KindServerReported:
		return apiErr.Message
	case client.KindResponse:
		if strings.TrimSpace(apiErr.Message) != "" {
			return apiErr.Message
		}
		return MsgFetchFailed
	case client.KindNoResponse:
		return MsgNoResponse
	default:
		return MsgGenericFailed
	}
}
