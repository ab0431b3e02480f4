package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/queue"
	"github.com/sswm/waste-admin-api/internal/service"
)

// publishActivity emits an activity-feed event after a successful mutation.
// Publishing happens off the request goroutine and failures are swallowed;
// the feed is advisory, the mutation already committed.
func publishActivity(c echo.Context, res service.Result, action, entityType, idKey, detail string) {
	if res.ErrorCode != 0 {
		return
	}
	role, _ := c.Get("role").(string)
	var entityID int64
	if m, ok := res.Data.(map[string]any); ok {
		if id, ok := m[idKey].(int64); ok {
			entityID = id
		}
	}
	ev := queue.NewActivityEvent(userID(c), role, action, entityType, entityID, detail)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue.PublishActivity(ctx, ev)
	}()
}
