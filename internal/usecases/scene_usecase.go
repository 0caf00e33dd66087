package usecases

import (
	"bytes"
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"tradedesk.backend/internal/domain/entities"
	domainerrors "tradedesk.backend/internal/domain/errors"
	"tradedesk.backend/internal/domain/repositories"
	"tradedesk.backend/pkg/logger"
	"tradedesk.backend/pkg/metrics"
	"tradedesk.backend/pkg/table"
	"tradedesk.backend/pkg/utils"
)

// Scene keys
const (
	SceneIndicators      = "indicators"
	ScenePayments        = "payments"
	SceneReferrals       = "referrals"
	SceneUsers           = "users"
	ScenePaidSubscribers = "paid-subscribers"
	SceneDemoSubscribers = "demo-subscribers"
	SceneDailyPaidDemo   = "daily-paid-demo"
	SceneRecentActivity  = "recent-activity"
)

// SceneQuery is one listing request. Sort, when set, overrides the stored sort for
// this request only.
type SceneQuery struct {
	Filter string
	Sort   string
	Dir    string
	Page   int
	Limit  int
}

// SceneRow is one rendered record. Cells holds the visible data columns by key.
type SceneRow struct {
	ID    string            `json:"id"`
	Cells map[string]string `json:"cells"`
}

// SceneResult is a filtered, sorted and paginated table
type SceneResult struct {
	Scene      entities.Scene       `json:"scene"`
	Columns    []table.ColumnInfo   `json:"columns"`
	Sort       table.SortState      `json:"sort"`
	Filter     string               `json:"filter"`
	Rows       []SceneRow           `json:"rows"`
	Pagination utils.PaginationMeta `json:"pagination"`
}

// SceneExport is a rendered download
type SceneExport struct {
	FileName    string
	ContentType string
	Body        []byte
}

// scene hides the record type of a table scene.
type scene interface {
	info() entities.Scene
	columns(v table.Visibility) []table.ColumnInfo
	normalize(v table.Visibility) table.Visibility
	toggle(v table.Visibility, key string) (table.Visibility, error)
	checkSort(s table.SortState) error
	rows(ctx context.Context, filter string, s table.SortState, v table.Visibility, p utils.PaginationParams) ([]SceneRow, utils.PaginationMeta, error)
	export(ctx context.Context, buf *bytes.Buffer, f table.Format, filter string, s table.SortState, v table.Visibility) error
}

type tableScene[T any] struct {
	key   string
	title string
	table *table.Table[T]
	id    func(T) string
	load  func(ctx context.Context) ([]T, error)
}

func (s *tableScene[T]) info() entities.Scene {
	return entities.Scene{Key: s.key, Title: s.title}
}

func (s *tableScene[T]) columns(v table.Visibility) []table.ColumnInfo {
	return s.table.Info(v)
}

func (s *tableScene[T]) normalize(v table.Visibility) table.Visibility {
	return s.table.Normalize(v)
}

func (s *tableScene[T]) toggle(v table.Visibility, key string) (table.Visibility, error) {
	return s.table.ToggleColumn(v, key)
}

func (s *tableScene[T]) checkSort(st table.SortState) error {
	_, err := s.table.Sort(nil, st)
	return err
}

func (s *tableScene[T]) query(ctx context.Context, filter string, st table.SortState) ([]T, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return s.table.Apply(records, table.Query{Filter: filter, Sort: st})
}

func (s *tableScene[T]) rows(ctx context.Context, filter string, st table.SortState, v table.Visibility, p utils.PaginationParams) ([]SceneRow, utils.PaginationMeta, error) {
	records, err := s.query(ctx, filter, st)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	page, meta := utils.Paginate(records, p)

	cells := s.table.Records(page, v)
	out := make([]SceneRow, len(page))
	for i, r := range page {
		out[i] = SceneRow{ID: s.id(r), Cells: cells[i]}
	}
	return out, meta, nil
}

func (s *tableScene[T]) export(ctx context.Context, buf *bytes.Buffer, f table.Format, filter string, st table.SortState, v table.Visibility) error {
	records, err := s.query(ctx, filter, st)
	if err != nil {
		return err
	}
	return s.table.Export(buf, f, records, v, table.ExportOptions{Title: s.title, GeneratedAt: timeNow()})
}

// SceneUsecase serves every admin table through one generic engine
type SceneUsecase struct {
	scenes []scene
	index  map[string]scene
	views  repositories.ViewStateStore
}

// NewSceneUsecase wires the scene catalogue to its data sources
func NewSceneUsecase(
	subscribers repositories.SubscriberRepository,
	payments repositories.PaymentRepository,
	referrals repositories.ReferralRepository,
	indicators repositories.IndicatorRepository,
	views repositories.ViewStateStore,
) *SceneUsecase {
	listSubscribers := func(filter entities.SubscriberFilter) func(ctx context.Context) ([]*entities.Subscriber, error) {
		return func(ctx context.Context) ([]*entities.Subscriber, error) {
			subs, err := subscribers.List(ctx, filter)
			if err != nil {
				return nil, err
			}
			now := timeNow()
			for _, s := range subs {
				s.Refresh(now)
			}
			return subs, nil
		}
	}
	allSubscribers := listSubscribers(entities.SubscriberFilter{})

	u := &SceneUsecase{views: views, index: make(map[string]scene)}
	u.register(
		&tableScene[*entities.Indicator]{
			key: SceneIndicators, title: "Indicators", table: indicatorTable,
			id: func(i *entities.Indicator) string { return i.ID }, load: indicators.List,
		},
		&tableScene[*entities.Payment]{
			key: ScenePayments, title: "Payments", table: paymentTable,
			id: func(p *entities.Payment) string { return p.ID }, load: payments.List,
		},
		&tableScene[*entities.Referral]{
			key: SceneReferrals, title: "Referrals", table: referralTable,
			id: func(r *entities.Referral) string { return r.ID }, load: referrals.List,
		},
		&tableScene[*entities.Subscriber]{
			key: SceneUsers, title: "Users", table: subscriberTable,
			id: subscriberID, load: allSubscribers,
		},
		&tableScene[*entities.Subscriber]{
			key: ScenePaidSubscribers, title: "Paid Subscribers", table: subscriberTable,
			id: subscriberID, load: listSubscribers(entities.SubscriberFilter{Kind: entities.SubscriberKindPaid}),
		},
		&tableScene[*entities.Subscriber]{
			key: SceneDemoSubscribers, title: "Demo Subscribers", table: subscriberTable,
			id: subscriberID, load: listSubscribers(entities.SubscriberFilter{Kind: entities.SubscriberKindDemo}),
		},
		&tableScene[*entities.DailyPaidDemo]{
			key: SceneDailyPaidDemo, title: "Daily Paid vs Demo", table: dailyPaidDemoTable,
			id: func(d *entities.DailyPaidDemo) string { return formatDate(d.Date) },
			load: func(ctx context.Context) ([]*entities.DailyPaidDemo, error) {
				subs, err := allSubscribers(ctx)
				if err != nil {
					return nil, err
				}
				return dailyPaidDemo(subs, timeNow().Location()), nil
			},
		},
		&tableScene[*entities.Activity]{
			key: SceneRecentActivity, title: "Recent Activity", table: activityTable,
			id: func(a *entities.Activity) string { return a.ID },
			load: func(ctx context.Context) ([]*entities.Activity, error) {
				subs, err := allSubscribers(ctx)
				if err != nil {
					return nil, err
				}
				pays, err := payments.List(ctx)
				if err != nil {
					return nil, err
				}
				return recentActivity(subs, pays, 0), nil
			},
		},
	)
	return u
}

func (u *SceneUsecase) register(scenes ...scene) {
	for _, s := range scenes {
		u.scenes = append(u.scenes, s)
		u.index[s.info().Key] = s
	}
}

// Scenes lists the table scenes in sidebar order
func (u *SceneUsecase) Scenes() []entities.Scene {
	out := make([]entities.Scene, len(u.scenes))
	for i, s := range u.scenes {
		out[i] = s.info()
	}
	return out
}

// Query renders a scene for an account using its stored view state
func (u *SceneUsecase) Query(ctx context.Context, accountID uuid.UUID, key string, q SceneQuery) (*SceneResult, error) {
	s, err := u.scene(key)
	if err != nil {
		return nil, err
	}
	state := u.loadState(ctx, accountID, s)

	sortState := state.Sort
	if q.Sort != "" {
		sortState = table.SortState{Key: q.Sort, Direction: table.ParseDirection(q.Dir)}
		if err := s.checkSort(sortState); err != nil {
			return nil, columnError(err)
		}
	}

	rows, meta, err := s.rows(ctx, q.Filter, sortState, state.Visibility, utils.GetPaginationParams(q.Page, q.Limit))
	if err != nil {
		return nil, err
	}
	return &SceneResult{
		Scene:      s.info(),
		Columns:    s.columns(state.Visibility),
		Sort:       sortState,
		Filter:     q.Filter,
		Rows:       rows,
		Pagination: meta,
	}, nil
}

// Sort applies a header click to the stored sort: the same column flips direction,
// another column starts ascending.
func (u *SceneUsecase) Sort(ctx context.Context, accountID uuid.UUID, key, column string) (table.SortState, error) {
	s, err := u.scene(key)
	if err != nil {
		return table.SortState{}, err
	}
	state := u.loadState(ctx, accountID, s)

	next := state.Sort.Click(column)
	if err := s.checkSort(next); err != nil {
		return table.SortState{}, columnError(err)
	}
	state.Sort = next
	if err := u.views.Save(ctx, accountID, key, state); err != nil {
		return table.SortState{}, err
	}
	return next, nil
}

// ToggleColumn shows or hides one column. Pinned columns are refused.
func (u *SceneUsecase) ToggleColumn(ctx context.Context, accountID uuid.UUID, key, column string) ([]table.ColumnInfo, error) {
	s, err := u.scene(key)
	if err != nil {
		return nil, err
	}
	state := u.loadState(ctx, accountID, s)

	v, err := s.toggle(state.Visibility, column)
	if err != nil {
		return nil, columnError(err)
	}
	state.Visibility = v
	if err := u.views.Save(ctx, accountID, key, state); err != nil {
		return nil, err
	}
	return s.columns(v), nil
}

// Export renders the filtered, sorted scene with its visible columns
func (u *SceneUsecase) Export(ctx context.Context, accountID uuid.UUID, key, format, filter string) (*SceneExport, error) {
	s, err := u.scene(key)
	if err != nil {
		return nil, err
	}
	f, err := table.ParseFormat(format)
	if err != nil {
		return nil, domainerrors.BadRequest("Export format must be xls or pdf.")
	}
	state := u.loadState(ctx, accountID, s)

	var buf bytes.Buffer
	if err := s.export(ctx, &buf, f, filter, state.Sort, state.Visibility); err != nil {
		return nil, err
	}
	metrics.ObserveExport(key, string(f))
	return &SceneExport{
		FileName:    table.FileName(key, f, timeNow()),
		ContentType: f.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}

func (u *SceneUsecase) scene(key string) (scene, error) {
	s, ok := u.index[key]
	if !ok {
		return nil, domainerrors.NotFound("Unknown scene: " + key)
	}
	return s, nil
}

// loadState falls back to defaults when the store is unavailable or holds a sort on
// a column that no longer exists.
func (u *SceneUsecase) loadState(ctx context.Context, accountID uuid.UUID, s scene) *entities.ViewState {
	state, err := u.views.Get(ctx, accountID, s.info().Key)
	if err != nil || state == nil {
		if err != nil {
			logger.Warn(ctx, "view state unavailable", zap.String("scene", s.info().Key), zap.Error(err))
		}
		state = &entities.ViewState{}
	}
	if s.checkSort(state.Sort) != nil {
		state.Sort = table.SortState{}
	}
	state.Visibility = s.normalize(state.Visibility)
	return state
}

func columnError(err error) error {
	switch {
	case errors.Is(err, table.ErrPinnedColumn):
		return domainerrors.BadRequest("This column cannot be hidden.")
	case errors.Is(err, table.ErrNotSortable):
		return domainerrors.BadRequest("This column cannot be sorted.")
	case errors.Is(err, table.ErrUnknownColumn):
		return domainerrors.BadRequest("Unknown column.")
	}
	return err
}
