package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hr-hierarchy/internal/dto"
	"hr-hierarchy/internal/service"
	"hr-hierarchy/pkg/utils"
)

type EmployeeHandler struct {
	employeeService service.EmployeeService
}

func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// List 获取完整组织层级
// @Summary 获取完整组织层级
// @Tags Employee
// @Produce json
// @Success 200 {object} map[string]interface{} "嵌套的层级树"
// @Failure 500 {string} string
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	tree, err := h.employeeService.GetHierarchy(c.Request.Context())
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, tree)
}

// Get 获取员工的上级链
// @Summary 获取员工的上级链
// @Tags Employee
// @Produce json
// @Param name path string true "员工姓名"
// @Param levels query int false "向上查找的层数，0 表示不限制"
// @Success 200 {object} map[string]interface{} "嵌套的上级链"
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /employees/{name} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	var req dto.GetSupervisorsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	tree, err := h.employeeService.GetSupervisors(c.Request.Context(), c.Param("name"), req.Levels)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, tree)
}

// Create 创建组织层级
// @Summary 创建组织层级（整体替换）
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeesRequest true "员工 -> 直属上级"
// @Success 200 {object} map[string]interface{} "嵌套的层级树"
// @Failure 400 {string} string
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	tree, err := h.employeeService.Create(c.Request.Context(), req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, tree)
}
