package client

import (
	"context"

	"go-user-directory/internal/domain"
)

// State 一次 UI 会话的瞬态状态，不属于持久实体
type State struct {
	EditID   int    // 正在编辑的记录 ID，0 表示新建模式
	DeleteID int    // 待确认删除的 ID，0 表示无
	Query    string // 当前搜索词
}

func (st State) Editing() bool { return st.EditID != 0 }

type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectCreate
	EffectUpdate
	EffectDelete
)

// Effect 描述一次需要对服务端执行的调用；由 Session 执行
type Effect struct {
	Kind  EffectKind
	ID    int
	Input domain.UserInput
}

// 以下是各用户动作对应的纯转移函数：输入当前状态，
// 返回新状态和需要的调用描述，便于独立测试

// SubmitForm 编辑中则更新该记录，否则创建
func SubmitForm(st State, in domain.UserInput) (State, Effect) {
	if st.EditID != 0 {
		return st, Effect{Kind: EffectUpdate, ID: st.EditID, Input: in}
	}
	return st, Effect{Kind: EffectCreate, Input: in}
}

func BeginEdit(st State, id int) State { st.EditID = id; return st }
func CancelEdit(st State) State        { st.EditID = 0; return st }

func Search(st State, q string) State { st.Query = q; return st }
func ClearSearch(st State) State      { st.Query = ""; return st }

// RequestDelete 第一阶段：记下待删 ID，等待确认
func RequestDelete(st State, id int) State { st.DeleteID = id; return st }

// ConfirmDelete 第二阶段：有待删 ID 才产生删除调用
func ConfirmDelete(st State) (State, Effect) {
	if st.DeleteID == 0 {
		return st, Effect{}
	}
	return st, Effect{Kind: EffectDelete, ID: st.DeleteID}
}

func CancelDelete(st State) State { st.DeleteID = 0; return st }

// Session 把状态、镜像和 REST 客户端拼在一起：应用转移函数、
// 执行产生的调用、成功后重新拉取并清理瞬态状态
type Session struct {
	state State
	cl    *Client
	cache *Cache
}

func NewSession(cl *Client) *Session {
	return &Session{cl: cl, cache: NewCache(cl)}
}

func (s *Session) State() State  { return s.state }
func (s *Session) Cache() *Cache { return s.cache }

// Start 初次加载
func (s *Session) Start(ctx context.Context) error { return s.cache.Load(ctx) }

// Visible 当前应显示的记录集（按当前搜索词过滤）
func (s *Session) Visible() []domain.User { return s.cache.Filter(s.state.Query) }

// Submit 提交表单。失败时状态和镜像都不动；
// 成功后清编辑态并整体重载
func (s *Session) Submit(ctx context.Context, in domain.UserInput) (domain.User, error) {
	st, eff := SubmitForm(s.state, in)

	var u domain.User
	var err error
	switch eff.Kind {
	case EffectUpdate:
		u, err = s.cl.Update(ctx, eff.ID, eff.Input)
	default:
		u, err = s.cl.Create(ctx, eff.Input)
	}
	if err != nil {
		return domain.User{}, err
	}

	s.state = CancelEdit(st)
	return u, s.cache.Load(ctx)
}

// BeginEdit 进入编辑模式并返回表单预填内容；ID 不在镜像中则不动
func (s *Session) BeginEdit(id int) (Form, bool) {
	for _, u := range s.cache.Users() {
		if u.ID == id {
			s.state = BeginEdit(s.state, id)
			return FormFor(u), true
		}
	}
	return Form{}, false
}

func (s *Session) CancelEdit() { s.state = CancelEdit(s.state) }

func (s *Session) Search(q string) []domain.User {
	s.state = Search(s.state, q)
	return s.Visible()
}

func (s *Session) ClearSearch() []domain.User {
	s.state = ClearSearch(s.state)
	return s.Visible()
}

func (s *Session) RequestDelete(id int) { s.state = RequestDelete(s.state, id) }

func (s *Session) CancelDelete() { s.state = CancelDelete(s.state) }

// ConfirmDelete 没有待删 ID 时是空操作；删除成功才清状态并重载
func (s *Session) ConfirmDelete(ctx context.Context) error {
	st, eff := ConfirmDelete(s.state)
	if eff.Kind == EffectNone {
		return nil
	}
	if err := s.cl.Delete(ctx, eff.ID); err != nil {
		return err
	}
	s.state = CancelDelete(st)
	return s.cache.Load(ctx)
}
