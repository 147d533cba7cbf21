package controllers

import (
	"github.com/gin-gonic/gin"
	"shudao/internal/services"
	"shudao/pkg/utils"
)

type FiltersController struct {
	filterService services.FilterServiceInterface
}

func NewFiltersController(filterService services.FilterServiceInterface) *FiltersController {
	return &FiltersController{
		filterService: filterService,
	}
}

// GetOptions godoc
// @Summary Distinct filter values across all reference tables
// @Description Bundles the categorical values that drive the client-side filter UI
// @Tags Filters
// @Produce json
// @Success 200
// @Router /api/filters/options [get]
func (f *FiltersController) GetOptions(c *gin.Context) {
	options, err := f.filterService.GetOptions(c.Request.Context())
	if err != nil {
		utils.RespondFlagError(c, err.Error())
		return
	}
	utils.RespondItem(c, options)
}
