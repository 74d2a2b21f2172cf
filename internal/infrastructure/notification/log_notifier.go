package notification

import (
	"context"

	"tukangku/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// LogNotifier writes notifications to the application log. It stands in for a
// push-notification provider; callers treat delivery as best effort either
// way.

type LogNotifier struct{}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(ctx context.Context, userID, template string, payload map[string]any) error {
	logrus.Infof("[notification][log] user_id=%s template=%s payload=%v", userID, template, payload)
	return nil
}
