package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	domcrm "charterlink/internal/domain/crm"
	"charterlink/internal/pkg/config"
	"charterlink/internal/pkg/errs"
)

// apiResponse is the external API's envelope: a success flag plus optional
// error string; the HTTP status code rides alongside.
type apiResponse struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Client talks to the external relationship-management API with a bearer
// credential. It implements sync.CRMClient.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(cfg config.CRMConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.APIToken,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) LookupContactByEmail(ctx context.Context, email string) (*domcrm.Contact, error) {
	endpoint := c.baseURL + "/contacts/lookup?email=" + url.QueryEscape(email)

	var contact domcrm.Contact
	status, err := c.do(ctx, http.MethodGet, endpoint, nil, &contact)
	if err != nil {
		if status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	if contact.ID == "" {
		return nil, nil
	}
	return &contact, nil
}

func (c *Client) CreateContact(ctx context.Context, contact domcrm.Contact) (*domcrm.Contact, error) {
	var created domcrm.Contact
	if _, err := c.do(ctx, http.MethodPost, c.baseURL+"/contacts", contact, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateContact(ctx context.Context, id string, contact domcrm.Contact) error {
	_, err := c.do(ctx, http.MethodPut, c.baseURL+"/contacts/"+url.PathEscape(id), contact, nil)
	return err
}

func (c *Client) AddNote(ctx context.Context, contactID, text string) error {
	body := map[string]string{"content": text}
	_, err := c.do(ctx, http.MethodPost, c.baseURL+"/contacts/"+url.PathEscape(contactID)+"/notes", body, nil)
	return err
}

func (c *Client) CreateOpportunity(ctx context.Context, opp domcrm.Opportunity) (*domcrm.Opportunity, error) {
	var created domcrm.Opportunity
	if _, err := c.do(ctx, http.MethodPost, c.baseURL+"/opportunities", opp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateOpportunity(ctx context.Context, id string, opp domcrm.Opportunity) error {
	_, err := c.do(ctx, http.MethodPut, c.baseURL+"/opportunities/"+url.PathEscape(id), opp, nil)
	return err
}

// do issues one API call and decodes the data envelope into out (when out is
// non-nil). It returns the HTTP status code for callers that branch on it.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) (int, error) {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, errs.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, errs.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, errs.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return resp.StatusCode, errs.Wrapf(err, "unreadable response (status %d)", resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !envelope.Success {
		msg := envelope.Error
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return resp.StatusCode, errs.New("api error: " + msg)
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return resp.StatusCode, errs.Wrap(err, "failed to decode response data")
		}
	}
	return resp.StatusCode, nil
}
