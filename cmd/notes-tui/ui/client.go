package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client is a thin wrapper over the notes HTTP API. It holds the bearer
// token after a successful sign-in and attaches it to every call.
type Client struct {
	BaseURL string
	Token   string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, http: &http.Client{Timeout: 10 * time.Second}}
}

type Note struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) do(method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error != "" {
			return errors.New(e.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) SignUp(username, password, email string) error {
	var resp struct {
		Token string `json:"token"`
	}
	payload := map[string]string{"username": username, "password": password, "email": email}
	if err := c.do(http.MethodPost, "/sign_up", payload, &resp); err != nil {
		return err
	}
	c.Token = resp.Token
	return nil
}

func (c *Client) SignIn(username, password string) error {
	var resp struct {
		Token string `json:"token"`
	}
	payload := map[string]string{"username": username, "password": password}
	if err := c.do(http.MethodPost, "/sign_in", payload, &resp); err != nil {
		return err
	}
	c.Token = resp.Token
	return nil
}

func (c *Client) ListNotes(query string) ([]Note, error) {
	path := "/notes"
	if query != "" {
		path += "?query=" + url.QueryEscape(query)
	}
	var notes []Note
	if err := c.do(http.MethodGet, path, nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) GetNote(id uint) (*Note, error) {
	var n Note
	if err := c.do(http.MethodGet, fmt.Sprintf("/notes/%d", id), nil, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *Client) CreateNote(title, content string) (uint, error) {
	var resp struct {
		NoteID uint `json:"note_id"`
	}
	payload := map[string]string{"title": title, "content": content}
	if err := c.do(http.MethodPost, "/notes", payload, &resp); err != nil {
		return 0, err
	}
	return resp.NoteID, nil
}

func (c *Client) UpdateNote(id uint, title, content string) error {
	payload := map[string]string{"title": title, "content": content}
	return c.do(http.MethodPatch, fmt.Sprintf("/notes/%d", id), payload, nil)
}

func (c *Client) DeleteNote(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/notes/%d", id), nil, nil)
}

func (c *Client) Translate(text string) (string, error) {
	var resp struct {
		Translation string `json:"translation"`
	}
	if err := c.do(http.MethodPost, "/translate", map[string]string{"query": text}, &resp); err != nil {
		return "", err
	}
	return resp.Translation, nil
}
