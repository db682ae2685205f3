package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// methodUserStatus is the API method returning a user's submission history.
const methodUserStatus = "user.status"

// GetUserStatus fetches a window of a user's submissions, most recent
// first. from is 1-based; count bounds the window size.
func (c *Client) GetUserStatus(ctx context.Context, handle string, from, count int) ([]APISubmission, error) {
	params := map[string]string{
		"apiKey": c.creds.Key,
		"handle": handle,
		"from":   strconv.Itoa(from),
		"count":  strconv.Itoa(count),
		"time":   strconv.FormatInt(time.Now().Unix(), 10),
	}
	apiSig := c.creds.Sign(methodUserStatus, params)

	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	query.Set("apiSig", apiSig)

	c.logger.Debug("fetching user status",
		"handle", handle,
		"from", from,
		"count", count,
	)

	raw, err := c.get(ctx, methodUserStatus, query)
	if err != nil {
		return nil, fmt.Errorf("get user status: %w", err)
	}

	var subs []APISubmission
	if err := json.Unmarshal(raw, &subs); err != nil {
		return nil, &MalformedResponseError{Reason: "result is not a submission array: " + err.Error()}
	}

	return subs, nil
}
