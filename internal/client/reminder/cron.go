package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Notification доставленное напоминание
type Notification struct {
	At    time.Time
	Title string
	Body  string
	ID    int64
}

// CronNotifier реализует Notifier поверх cron планировщика.
// Каждое напоминание это ежедневная запись "M H * * *".
type CronNotifier struct {
	cron    *cron.Cron
	sink    func(Notification)
	logger  *slog.Logger
	entries map[int64]cron.EntryID
	alarms  map[int64]Alarm
	mu      sync.Mutex
	denied  bool
}

// NewCronNotifier создает notifier, который передает сработавшие напоминания в sink
func NewCronNotifier(sink func(Notification), logger *slog.Logger, loc *time.Location) *CronNotifier {
	if loc == nil {
		loc = time.Local
	}
	return &CronNotifier{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		sink:    sink,
		logger:  logger,
		entries: make(map[int64]cron.EntryID),
		alarms:  make(map[int64]Alarm),
	}
}

// SetDenied эмулирует запрет уведомлений пользователем
func (n *CronNotifier) SetDenied(denied bool) {
	n.mu.Lock()
	n.denied = denied
	n.mu.Unlock()
}

// RequestPermission разрешает уведомления, если они не запрещены и есть куда их доставлять
func (n *CronNotifier) RequestPermission(_ context.Context) (bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return !n.denied && n.sink != nil, nil
}

// Arm добавляет ежедневную запись, заменяя существующую с тем же ID
func (n *CronNotifier) Arm(ctx context.Context, alarm Alarm) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.removeLocked(alarm.ID)

	spec := fmt.Sprintf("%d %d * * *", alarm.FirstFire.Minute(), alarm.FirstFire.Hour())
	id, err := n.cron.AddJob(spec, n.job(alarm))
	if err != nil {
		return fmt.Errorf("failed to add cron entry %q: %w", spec, err)
	}

	n.entries[alarm.ID] = id
	n.alarms[alarm.ID] = alarm

	n.logger.DebugContext(ctx, "cron entry added",
		slog.Int64("plant_id", alarm.ID),
		slog.String("spec", spec))

	return nil
}

// Cancel удаляет запись; отсутствие записи не ошибка
func (n *CronNotifier) Cancel(id int64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.removeLocked(id)
	return nil
}

// Armed возвращает отсортированные ID взведенных напоминаний
func (n *CronNotifier) Armed() []int64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	ids := make([]int64, 0, len(n.entries))
	for id := range n.entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Next возвращает время следующего срабатывания напоминания.
// До Start cron не вычисляет расписание, тогда используется FirstFire.
func (n *CronNotifier) Next(id int64) (time.Time, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	entryID, ok := n.entries[id]
	if !ok {
		return time.Time{}, false
	}
	if next := n.cron.Entry(entryID).Next; !next.IsZero() {
		return next, true
	}
	return n.alarms[id].FirstFire, true
}

// Start запускает планировщик в фоне
func (n *CronNotifier) Start() {
	n.cron.Start()
}

// Stop останавливает планировщик и ждет завершения запущенных заданий или отмены ctx
func (n *CronNotifier) Stop(ctx context.Context) error {
	done := n.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *CronNotifier) removeLocked(id int64) {
	if entryID, ok := n.entries[id]; ok {
		n.cron.Remove(entryID)
		delete(n.entries, id)
		delete(n.alarms, id)
	}
}

func (n *CronNotifier) job(alarm Alarm) cron.Job {
	return cron.FuncJob(func() {
		if n.sink == nil {
			return
		}
		n.sink(Notification{
			ID:    alarm.ID,
			Title: alarm.Title,
			Body:  alarm.Body,
			At:    time.Now(),
		})
	})
}
