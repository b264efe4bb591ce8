package controller

import (
	"teateach_backend/internal/model"
	"teateach_backend/internal/service"
	"teateach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// @Summary 创建题目
// @Tags 题库
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.QuestionRequest true "题目信息"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response
// @Router /api/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var creatorID uint
	if user := util.GetUserFromContext(ctx); user != nil {
		creatorID = user.UserID
	}

	q, err := c.Service.CreateQuestion(ctx.Request.Context(), creatorID, req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// @Summary 获取题目详情
// @Tags 题库
// @Produce json
// @Security BearerAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	q, err := c.Service.GetQuestion(id)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// @Summary 分页查询题目
// @Tags 题库
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，从0开始"
// @Param size query int false "每页数量"
// @Param search query string false "按题干或解析搜索"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	page := util.ParseIntDefault(ctx.Query("page"), util.DefaultPage)
	size := util.ParseIntDefault(ctx.Query("size"), 0)

	qs, page, size, err := c.Service.ListQuestions(page, size, ctx.Query("search"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: qs, Page: page, Size: size})
}

// @Summary 按题型和难度筛选题目
// @Tags 题库
// @Produce json
// @Security BearerAuth
// @Param type query string false "题型"
// @Param difficulty query string false "难度"
// @Success 200 {object} util.Response{data=[]model.Question}
// @Router /api/questions/filter [get]
func (c *QuestionController) Filter(ctx *gin.Context) {
	qs, err := c.Service.FilterQuestions(model.QuestionType(ctx.Query("type")), ctx.Query("difficulty"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, qs)
}

// @Summary 按知识点查询题目
// @Tags 题库
// @Produce json
// @Security BearerAuth
// @Param knowledgePointId path int true "知识点ID"
// @Success 200 {object} util.Response{data=[]model.Question}
// @Router /api/questions/knowledge-point/{knowledgePointId} [get]
func (c *QuestionController) ListByKnowledgePoint(ctx *gin.Context) {
	kpID, ok := pathID(ctx, "knowledgePointId")
	if !ok {
		return
	}

	qs, err := c.Service.ListByKnowledgePoint(kpID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, qs)
}

// @Summary 更新题目
// @Tags 题库
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "题目ID"
// @Param body body service.QuestionRequest true "题目信息"
// @Success 200 {object} util.Response{data=model.Question}
// @Router /api/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.UpdateQuestion(ctx.Request.Context(), id, req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// @Summary 删除题目
// @Tags 题库
// @Security BearerAuth
// @Param id path int true "题目ID"
// @Success 204
// @Router /api/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.Service.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
