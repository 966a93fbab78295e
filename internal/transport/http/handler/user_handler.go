package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-user-directory/internal/domain"
	"go-user-directory/internal/store"
	resp "go-user-directory/internal/transport/http/response"
)

// UserHandler 把 HTTP 请求翻译成 Store 操作，不含业务规则
type UserHandler struct {
	store *store.Store
}

func NewUserHandler(s *store.Store) *UserHandler { return &UserHandler{store: s} }

// MountAPI 挂载到 /api 分组下
func (h *UserHandler) MountAPI(api *gin.RouterGroup) {
	g := api.Group("/users")
	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h *UserHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.List())
}

func (h *UserHandler) create(c *gin.Context) {
	var in domain.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		// 读不出 name/email 的请求体按缺字段处理
		c.JSON(http.StatusBadRequest, resp.Err(store.ErrValidation.Error()))
		return
	}
	u, err := h.store.Create(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, resp.Err(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *UserHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, resp.Err(store.ErrNotFound.Error()))
		return
	}
	var in domain.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Err(store.ErrValidation.Error()))
		return
	}
	u, err := h.store.Update(id, in)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, resp.Err(err.Error()))
	case err != nil:
		c.JSON(http.StatusBadRequest, resp.Err(err.Error()))
	default:
		c.JSON(http.StatusOK, u)
	}
}

func (h *UserHandler) remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, resp.Err(store.ErrNotFound.Error()))
		return
	}
	if err := h.store.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, resp.Err(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID 解析 :id；非数字的 id 不可能命中任何记录，按 not found 处理
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
