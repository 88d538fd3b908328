package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/learnkeep/learnkeep/app/logic/v1"
	"github.com/learnkeep/learnkeep/app/response"
	"github.com/learnkeep/learnkeep/pkg/types"
	"github.com/learnkeep/learnkeep/pkg/utils"
)

// SubmitResourceRequest is shared by create and update. The attachment
// arrives as the optional multipart "file" part and is read separately.
type SubmitResourceRequest struct {
	Title       string `form:"title" json:"title" binding:"required,min=3"`
	Description string `form:"description" json:"description" binding:"required,min=10"`
	Type        string `form:"type" json:"type" binding:"required,oneof=Article Video Tutorial"`
	URL         string `form:"url" json:"url" binding:"omitempty,url"`
}

type ResourceResponse struct {
	types.Resource
	Warning string `json:"warning,omitempty"`
}

func (s *HttpSrv) CreateResource(c *gin.Context) {
	var (
		err error
		req SubmitResourceRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	// the attachment is optional, a missing part is not an error
	file, _ := c.FormFile("file")

	data, warning, err := v1.NewResourceLogic(c, s.Core).CreateResource(v1.SubmitResourceArgs{
		Title:       req.Title,
		Description: req.Description,
		Type:        types.ResourceType(req.Type),
		URL:         req.URL,
		File:        file,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ResourceResponse{
		Resource: *data,
		Warning:  localizeKey(c, warning),
	})
}

func (s *HttpSrv) UpdateResource(c *gin.Context) {
	resourceID, _ := c.Params.Get("id")

	var (
		err error
		req SubmitResourceRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	file, _ := c.FormFile("file")

	data, warning, err := v1.NewResourceLogic(c, s.Core).UpdateResource(resourceID, v1.SubmitResourceArgs{
		Title:       req.Title,
		Description: req.Description,
		Type:        types.ResourceType(req.Type),
		URL:         req.URL,
		File:        file,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ResourceResponse{
		Resource: *data,
		Warning:  localizeKey(c, warning),
	})
}

func (s *HttpSrv) GetResource(c *gin.Context) {
	resourceID, _ := c.Params.Get("id")

	data, err := v1.NewResourceLogic(c, s.Core).GetResource(resourceID)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, data)
}

type ListResourceResponse struct {
	List []types.Resource `json:"list"`
}

func (s *HttpSrv) ListResource(c *gin.Context) {
	list, err := v1.NewResourceLogic(c, s.Core).ListResources(c.Query("search"), c.Query("type"))
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, ListResourceResponse{
		List: list,
	})
}

func (s *HttpSrv) DeleteResource(c *gin.Context) {
	resourceID, _ := c.Params.Get("id")

	err := v1.NewResourceLogic(c, s.Core).Delete(resourceID)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}
