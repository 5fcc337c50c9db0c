package controllers

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/thats-dominik/athlena/services"
	"github.com/thats-dominik/athlena/utils"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	Nutrition *services.NutritionService
}

func NewAIController(nutrition *services.NutritionService) *AIController {
	return &AIController{Nutrition: nutrition}
}

type analyzeMealJSON struct {
	InputType string `json:"inputType"`
	InputData string `json:"inputData"`
}

// AnalyzeMeal accepts either a JSON body {inputType, inputData} or a
// multipart form (inputType, description?, image?) and returns
// {meal: [items...]}. Validation failures never reach the AI API.
func (h *AIController) AnalyzeMeal(c *gin.Context) {
	var inputType, inputData, imageDataURI string

	contentType := c.GetHeader("Content-Type")
	switch {
	case strings.Contains(contentType, "application/json"):
		var body analyzeMealJSON
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		inputType = body.InputType
		inputData = body.InputData

	case strings.Contains(contentType, "multipart/form-data"):
		inputType = c.PostForm("inputType")
		inputData = c.PostForm("description") // optional caption for the image

		if file, err := c.FormFile("image"); err == nil {
			dataURI, err := fileToDataURI(file)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
				return
			}
			imageDataURI = dataURI
		}

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported content type"})
		return
	}

	if inputType == "" || (inputData == "" && imageDataURI == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing input data"})
		return
	}

	if imageDataURI != "" {
		items, err := h.Nutrition.AnalyzeImage(c.Request.Context(), imageDataURI)
		if err != nil {
			handleServiceError(c, err)
			return
		}

		resp := gin.H{"meal": items}
		if utils.S3Enabled() {
			// Archive the photo so the saved meal can link back to it.
			// A storage hiccup must not fail the analysis.
			if url, err := utils.UploadBase64ImageToS3(imageDataURI, "meal-photos"); err == nil {
				resp["image_url"] = url
			} else {
				log.Printf("meal photo archive failed: %v", err)
			}
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	items, err := h.Nutrition.AnalyzeText(c.Request.Context(), inputData)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": items})
}

func fileToDataURI(file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}
