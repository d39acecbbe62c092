package out

import (
	"context"
	"log/slog"
	"net/http"

	"ghostwrite/internal/modules/account/domain"
	accountout "ghostwrite/internal/modules/account/port/out"
	"ghostwrite/internal/platform/clock"
	"ghostwrite/internal/platform/gateway"
	"ghostwrite/internal/platform/id"
)

var offlineUser = domain.User{
	ID:       "1",
	Username: "ghostwrite_user",
	Email:    "user@example.com",
	Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=ghostwrite",
	Bio:      "Passionate developer & lifelong learner",
	JoinDate: "2024-01-15",
}

// APIClient talks to the backend auth endpoints. With fallback enabled
// (development builds only) an unreachable backend yields a fabricated
// session so the rest of the client can be exercised offline.
type APIClient struct {
	gw       *gateway.Gateway
	clk      clock.Clock
	ids      id.Generator
	fallback bool
}

func NewAPIClient(gw *gateway.Gateway, clk clock.Clock, ids id.Generator, fallback bool) *APIClient {
	return &APIClient{gw: gw, clk: clk, ids: ids, fallback: fallback}
}

var _ accountout.AuthAPI = (*APIClient)(nil)

type authResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

func (c *APIClient) SignUp(ctx context.Context, email, password, username string) (domain.Session, error) {
	body := map[string]string{"email": email, "password": password, "username": username}
	var resp authResponse
	if err := c.gw.Do(ctx, http.MethodPost, "/auth/signup", body, &resp); err != nil {
		if c.fallback {
			slog.Warn("signup failed, fabricating offline session", "error", err)
			return c.fabricate(username, email, "New learner!"), nil
		}
		return domain.Session{}, err
	}
	return domain.Session{User: resp.User, Token: resp.Token, Since: c.clk.Now()}, nil
}

func (c *APIClient) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.gw.Do(ctx, http.MethodPost, "/auth/signin", body, &resp); err != nil {
		if c.fallback {
			slog.Warn("signin failed, fabricating offline session", "error", err)
			return c.fabricate(domain.LocalPart(email), email, "Passionate learner"), nil
		}
		return domain.Session{}, err
	}
	return domain.Session{User: resp.User, Token: resp.Token, Since: c.clk.Now()}, nil
}

func (c *APIClient) GetUser(ctx context.Context, username string) (domain.User, error) {
	var user domain.User
	if err := c.gw.Do(ctx, http.MethodGet, "/users/"+username, nil, &user); err != nil {
		if c.fallback {
			slog.Warn("get user failed, using offline profile", "username", username, "error", err)
			return offlineUser, nil
		}
		return domain.User{}, err
	}
	return user, nil
}

func (c *APIClient) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	var user domain.User
	if err := c.gw.Do(ctx, http.MethodGet, "/users/id/"+userID, nil, &user); err != nil {
		if c.fallback {
			slog.Warn("get user by id failed, using offline profile", "id", userID, "error", err)
			return offlineUser, nil
		}
		return domain.User{}, err
	}
	return user, nil
}

func (c *APIClient) fabricate(username, email, bio string) domain.Session {
	now := c.clk.Now()
	return domain.Session{
		User: domain.User{
			ID:       c.ids.New(),
			Username: username,
			Email:    email,
			Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=" + username,
			Bio:      bio,
			JoinDate: now.Format("2006-01-02"),
		},
		Token: "mock_jwt_" + c.ids.New(),
		Since: now,
	}
}
