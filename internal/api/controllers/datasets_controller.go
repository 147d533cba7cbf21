package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"shudao/internal/services"
	"shudao/pkg/utils"
)

// DatasetsController serves the four read-only geo-tagged reference
// datasets. All endpoints answer in the always-200 dialect.
type DatasetsController struct {
	datasetService services.DatasetServiceInterface
}

func NewDatasetsController(datasetService services.DatasetServiceInterface) *DatasetsController {
	return &DatasetsController{
		datasetService: datasetService,
	}
}

// GetPoems godoc
// @Summary List poems with valid coordinates
// @Tags Datasets
// @Produce json
// @Success 200
// @Router /api/poems [get]
func (d *DatasetsController) GetPoems(c *gin.Context) {
	poems, err := d.datasetService.ListPoems(c.Request.Context())
	if err != nil {
		utils.RespondFlagListError(c, err.Error())
		return
	}
	utils.RespondList(c, poems, len(poems))
}

// GetPoemByID godoc
// @Summary Fetch a single poem
// @Tags Datasets
// @Produce json
// @Param id path int true "Poem ID"
// @Success 200
// @Router /api/poems/{id} [get]
func (d *DatasetsController) GetPoemByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondFlagError(c, "Invalid poem ID")
		return
	}

	poem, err := d.datasetService.GetPoemByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrPoemNotFound) {
			utils.RespondFlagError(c, "Poem not found")
			return
		}
		utils.RespondFlagError(c, err.Error())
		return
	}
	utils.RespondItem(c, poem)
}

func (d *DatasetsController) GetHeritage(c *gin.Context) {
	items, err := d.datasetService.ListHeritage(c.Request.Context())
	if err != nil {
		utils.RespondFlagListError(c, err.Error())
		return
	}
	utils.RespondList(c, items, len(items))
}

func (d *DatasetsController) GetHistory(c *gin.Context) {
	items, err := d.datasetService.ListHistory(c.Request.Context())
	if err != nil {
		utils.RespondFlagListError(c, err.Error())
		return
	}
	utils.RespondList(c, items, len(items))
}

func (d *DatasetsController) GetScenic(c *gin.Context) {
	items, err := d.datasetService.ListScenic(c.Request.Context())
	if err != nil {
		utils.RespondFlagListError(c, err.Error())
		return
	}
	utils.RespondList(c, items, len(items))
}
