package controller

import (
	"teateach_backend/internal/model"
	"teateach_backend/internal/service"
	"teateach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestPaperController struct {
	Service *service.TestPaperService
}

func NewTestPaperController(svc *service.TestPaperService) *TestPaperController {
	return &TestPaperController{Service: svc}
}

// instructorFromToken 请求未指定教师时使用当前登录用户
func instructorFromToken(ctx *gin.Context, instructorID uint) uint {
	if instructorID != 0 {
		return instructorID
	}
	if user := util.GetUserFromContext(ctx); user != nil {
		return user.UserID
	}
	return 0
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, ok := util.ParseUintParam(ctx.Param(name))
	if !ok {
		util.BadRequest(ctx, "invalid "+name)
	}
	return id, ok
}

// @Summary 自动组卷
// @Description 按组卷方式从题库选题并保存试卷
// @Tags 试卷管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.GenerationRequest true "组卷参数"
// @Success 201 {object} util.Response{data=model.TestPaper}
// @Failure 400 {object} util.Response
// @Router /api/test-papers/generate [post]
func (c *TestPaperController) Generate(ctx *gin.Context) {
	var req model.GenerationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	req.InstructorID = instructorFromToken(ctx, req.InstructorID)

	paper, err := c.Service.Generate(ctx.Request.Context(), &req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, paper)
}

// @Summary 预览组卷结果
// @Description 与自动组卷相同的选题流程，不保存试卷。指定 seed 可复现结果
// @Tags 试卷管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.GenerationRequest true "组卷参数"
// @Success 200 {object} util.Response{data=[]model.Question}
// @Failure 400 {object} util.Response
// @Router /api/test-papers/preview [post]
func (c *TestPaperController) Preview(ctx *gin.Context) {
	var req model.GenerationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questions, err := c.Service.Preview(ctx.Request.Context(), &req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary 手动创建试卷
// @Tags 试卷管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.TestPaperRequest true "试卷信息"
// @Success 201 {object} util.Response{data=model.TestPaper}
// @Router /api/test-papers [post]
func (c *TestPaperController) Create(ctx *gin.Context) {
	var req service.TestPaperRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	req.InstructorID = instructorFromToken(ctx, req.InstructorID)

	paper, err := c.Service.CreateTestPaper(req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, paper)
}

// @Summary 获取试卷详情
// @Tags 试卷管理
// @Produce json
// @Security BearerAuth
// @Param id path int true "试卷ID"
// @Success 200 {object} util.Response{data=model.TestPaper}
// @Failure 404 {object} util.Response
// @Router /api/test-papers/{id} [get]
func (c *TestPaperController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	paper, err := c.Service.GetTestPaper(id)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, paper)
}

// @Summary 分页查询试卷
// @Tags 试卷管理
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，从0开始"
// @Param size query int false "每页数量"
// @Param search query string false "按试卷名称搜索"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/test-papers [get]
func (c *TestPaperController) List(ctx *gin.Context) {
	page := util.ParseIntDefault(ctx.Query("page"), util.DefaultPage)
	size := util.ParseIntDefault(ctx.Query("size"), 0)

	papers, page, size, err := c.Service.ListTestPapers(page, size, ctx.Query("search"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: papers, Page: page, Size: size})
}

// @Summary 按课程查询试卷
// @Tags 试卷管理
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "课程ID"
// @Success 200 {object} util.Response{data=[]model.TestPaper}
// @Router /api/test-papers/course/{courseId} [get]
func (c *TestPaperController) ListByCourse(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}

	papers, err := c.Service.ListByCourse(courseID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, papers)
}

// @Summary 按教师查询试卷
// @Tags 试卷管理
// @Produce json
// @Security BearerAuth
// @Param instructorId path int true "教师ID"
// @Success 200 {object} util.Response{data=[]model.TestPaper}
// @Router /api/test-papers/instructor/{instructorId} [get]
func (c *TestPaperController) ListByInstructor(ctx *gin.Context) {
	instructorID, ok := pathID(ctx, "instructorId")
	if !ok {
		return
	}

	papers, err := c.Service.ListByInstructor(instructorID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, papers)
}

// @Summary 查询包含指定题目的试卷
// @Tags 试卷管理
// @Produce json
// @Security BearerAuth
// @Param questionId path int true "题目ID"
// @Success 200 {object} util.Response{data=[]model.TestPaper}
// @Router /api/test-papers/question/{questionId} [get]
func (c *TestPaperController) ListByQuestion(ctx *gin.Context) {
	questionID, ok := pathID(ctx, "questionId")
	if !ok {
		return
	}

	papers, err := c.Service.ListByQuestion(questionID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, papers)
}

// @Summary 更新试卷
// @Description 请求体中的 id 必须与路径一致
// @Tags 试卷管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "试卷ID"
// @Param body body service.TestPaperRequest true "试卷信息"
// @Success 200 {object} util.Response{data=model.TestPaper}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/test-papers/{id} [put]
func (c *TestPaperController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.TestPaperRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	paper, err := c.Service.UpdateTestPaper(id, req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, paper)
}

// @Summary 删除试卷
// @Tags 试卷管理
// @Security BearerAuth
// @Param id path int true "试卷ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/test-papers/{id} [delete]
func (c *TestPaperController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.Service.DeleteTestPaper(id); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

// @Summary 导出试卷
// @Description 导出试卷和题目为 JSON 文件，返回下载地址
// @Tags 试卷管理
// @Produce json
// @Security BearerAuth
// @Param id path int true "试卷ID"
// @Success 200 {object} util.Response{data=service.ExportResult}
// @Failure 404 {object} util.Response
// @Router /api/test-papers/{id}/export [post]
func (c *TestPaperController) Export(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	res, err := c.Service.Export(ctx.Request.Context(), id)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, res)
}
