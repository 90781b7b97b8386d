package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"

	"atelier_backend/internal/adapter/http/dto/response"
	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase"
	"atelier_backend/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImageSize = 5 << 20

var allowedImageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

var (
	errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)
	errInvalidImage          = pkg.NewDomainErrorSimple("INVALID_IMAGE", "Image must be png, jpeg or webp and at most 5MB", http.StatusBadRequest)
)

type ProductHandler struct {
	usecase   usecase.IProductUseCase
	uploadDir string
}

func NewProductHandler(uc usecase.IProductUseCase, uploadDir string) *ProductHandler {
	return &ProductHandler{usecase: uc, uploadDir: uploadDir}
}

// CreateProduct handles POST /api/produits/. The payload is a multipart
// form so an image can ride along with the product fields.
//
// @Summary  Create a product
// @Tags     produits
// @Accept   multipart/form-data
// @Produce  json
// @Param    nom formData string true "product name"
// @Param    prix formData number true "unit price"
// @Param    stock formData integer false "initial stock"
// @Param    image formData file false "product image"
// @Success  201 {object} response.ProductResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /api/produits/ [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	p, appErr := h.bindProductForm(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), p)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProduct(created))
}

// GetProduct handles GET /api/produits/:id.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PRODUCT_ID", "Invalid product id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	p, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(p))
}

// ListProducts handles GET /api/produits/.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products))
}

// UpdateProduct handles PUT /api/produits/:id.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PRODUCT_ID", "Invalid product id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	p, appErr := h.bindProductForm(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	p.ID = id

	updated, err := h.usecase.Update(c.Request.Context(), p)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(updated))
}

// DeleteProduct handles DELETE /api/produits/:id.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PRODUCT_ID", "Invalid product id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// AdjustStock handles POST /api/produits/:id/stock with {"delta": -2}.
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PRODUCT_ID", "Invalid product id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.AdjustStock(c.Request.Context(), id, payload.Delta)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(p))
}

// ListDevices handles GET /api/produits/reconditionnes.
func (h *ProductHandler) ListDevices(c *gin.Context) {
	devices, err := h.usecase.ListDevices(c.Request.Context())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDevices(devices))
}

// CreateDevice handles POST /api/produits/reconditionnes.
func (h *ProductHandler) CreateDevice(c *gin.Context) {
	p, appErr := h.bindProductForm(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateDevice(c.Request.Context(), entities.RefurbishedDevice{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImagePath:   p.ImagePath,
	})
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDevice(created))
}

func (h *ProductHandler) bindProductForm(c *gin.Context) (entities.Product, *pkg.AppError) {
	var p entities.Product
	p.Name = c.PostForm("nom")
	p.Description = c.PostForm("description")

	price, err := strconv.ParseFloat(c.PostForm("prix"), 64)
	if err != nil {
		return entities.Product{}, errInvalidProductPayload
	}
	p.Price = price

	if raw := c.PostForm("stock"); raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil {
			return entities.Product{}, errInvalidProductPayload
		}
		p.Stock = stock
	}

	file, err := c.FormFile("image")
	if err == nil {
		path, appErr := h.saveImage(c, file)
		if appErr != nil {
			return entities.Product{}, appErr
		}
		p.ImagePath = path
	}

	return p, nil
}

// saveImage stores the upload under a fresh uuid name so client-chosen
// filenames never touch the filesystem.
func (h *ProductHandler) saveImage(c *gin.Context, file *multipart.FileHeader) (string, *pkg.AppError) {
	if file.Size > maxImageSize {
		return "", errInvalidImage
	}

	ext, ok := allowedImageTypes[file.Header.Get("Content-Type")]
	if !ok {
		return "", errInvalidImage
	}

	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	dest := filepath.Join(h.uploadDir, name)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		return "", pkg.NewDomainError("IMAGE_SAVE_FAILED", "Could not store image", err, http.StatusInternalServerError)
	}

	return dest, nil
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProduct):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT", "Invalid product", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Stock cannot go negative", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
