package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"workout-server/entities"
)

// Client is a typed HTTP client for the workout API, used by the
// terminal client. The bearer token is set after Login.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type Credentials struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

func (c *Client) do(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s: server returned %d: %s", method, path, resp.StatusCode, string(data))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Login authenticates and stores the bearer token for later calls.
func (c *Client) Login(username, password string) (*Credentials, error) {
	var creds Credentials
	payload := map[string]string{"username": username, "password": password}
	if err := c.do(http.MethodPost, "/api/login", payload, &creds); err != nil {
		return nil, err
	}
	c.token = creds.Token
	return &creds, nil
}

func (c *Client) Signup(username, password string) (*entities.User, error) {
	var user entities.User
	payload := map[string]string{"username": username, "password": password}
	if err := c.do(http.MethodPost, "/api/users", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Exercises() ([]entities.Exercise, error) {
	var exercises []entities.Exercise
	if err := c.do(http.MethodGet, "/api/exercises", nil, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (c *Client) Workouts() ([]entities.Workout, error) {
	var workouts []entities.Workout
	if err := c.do(http.MethodGet, "/api/workouts", nil, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (c *Client) Workout(id string) (*entities.Workout, error) {
	var workout entities.Workout
	if err := c.do(http.MethodGet, "/api/workouts/"+id, nil, &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

func (c *Client) CreateWorkout() (*entities.Workout, error) {
	var workout entities.Workout
	if err := c.do(http.MethodPost, "/api/workouts", nil, &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

func (c *Client) CreateFromTemplate(templateID string) (*entities.Workout, error) {
	var workout entities.Workout
	if err := c.do(http.MethodPost, "/api/workouts/template/"+templateID, nil, &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

func (c *Client) Templates() ([]entities.Workout, error) {
	var templates []entities.Workout
	if err := c.do(http.MethodGet, "/api/templates", nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// CreateTemplate saves a set list as a reusable template.
func (c *Client) CreateTemplate(sets []entities.Set) (*entities.Workout, error) {
	var template entities.Workout
	if err := c.do(http.MethodPost, "/api/templates", setsPayload(sets), &template); err != nil {
		return nil, err
	}
	return &template, nil
}

type setPayload struct {
	Weight      float64     `json:"weight"`
	Repetitions int         `json:"repetitions"`
	Completed   bool        `json:"completed"`
	UUID        string      `json:"uuid"`
	Exercise    exerciseRef `json:"exercise"`
}

type exerciseRef struct {
	ID string `json:"id"`
}

type setListPayload struct {
	Sets []setPayload `json:"sets"`
}

func setsPayload(sets []entities.Set) setListPayload {
	payload := setListPayload{Sets: make([]setPayload, 0, len(sets))}
	for _, s := range sets {
		payload.Sets = append(payload.Sets, setPayload{
			Weight:      s.Weight,
			Repetitions: s.Repetitions,
			Completed:   s.Completed,
			UUID:        s.UUID,
			Exercise:    exerciseRef{ID: s.ExerciseID},
		})
	}
	return payload
}

// UpdateWorkout pushes the complete current set list. The server treats
// this as a full overwrite, so the caller must always send every set.
func (c *Client) UpdateWorkout(id string, sets []entities.Set) error {
	return c.do(http.MethodPut, "/api/workouts/"+id, setsPayload(sets), nil)
}

func (c *Client) DeleteWorkout(id string) error {
	return c.do(http.MethodDelete, "/api/workouts/"+id, nil, nil)
}
