package handler

import (
	"errors"
	"net/http"
	"strconv"

	"design-service/internal/catalog"
	"design-service/internal/model"
	"design-service/pkg/logger"
	"design-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductRequest defines the structure for product creation/update requests
type ProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	SKU         string  `json:"sku" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	CategoryID  uint    `json:"category_id"`
	Style       string  `json:"style"`
	Material    string  `json:"material"`
	Finish      string  `json:"finish"`
	RoomType    string  `json:"room_type"`
	Rating      float64 `json:"rating"`
	IsAvailable bool    `json:"is_available"`
}

// ProductHandler serves catalog CRUD endpoints.
type ProductHandler struct {
	catalog *catalog.Repository
}

func NewProductHandler(cat *catalog.Repository) *ProductHandler {
	return &ProductHandler{catalog: cat}
}

// List handles retrieving all products with optional filtering
func (h *ProductHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Listing products with filters")

	var filter catalog.ProductFilter

	// Filter by availability if specified
	isAvailable := c.QueryParam("is_available")
	if isAvailable != "" {
		available, err := strconv.ParseBool(isAvailable)
		if err == nil {
			filter.Available = &available
			log.Info("Filtering products by availability", zap.Bool("is_available", available))
		} else {
			log.Warn("Invalid is_available parameter", zap.String("value", isAvailable), zap.Error(err))
		}
	}

	// Filter by category if specified
	if categoryID := c.QueryParam("category_id"); categoryID != "" {
		if id, err := strconv.ParseUint(categoryID, 10, 32); err == nil {
			filter.CategoryID = uint(id)
			log.Info("Filtering products by category", zap.String("category_id", categoryID))
		}
	}

	filter.RoomType = c.QueryParam("room_type")
	filter.Style = c.QueryParam("style")

	products, err := h.catalog.ListProducts(c.Request().Context(), filter)
	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve products",
		})
	}

	prometheus.RecordProductOperation("list")
	log.Info("Products retrieved successfully", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// Get handles retrieving a single product by ID
func (h *ProductHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid product ID",
		})
	}

	product, err := h.catalog.GetProduct(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Product not found",
			})
		}
		log.Error("Failed to load product", zap.Uint("product_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve product",
		})
	}

	prometheus.RecordProductOperation("get")
	log.Info("Product retrieved successfully",
		zap.Uint("product_id", id),
		zap.String("product_name", product.Name),
		zap.String("product_sku", product.SKU))
	return c.JSON(http.StatusOK, product)
}

// Create handles creating a new product
func (h *ProductHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new product")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.Name == "" || req.SKU == "" || req.Price <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "name, sku and a positive price are required",
		})
	}

	log.Info("Product creation request",
		zap.String("name", req.Name),
		zap.String("sku", req.SKU),
		zap.Float64("price", req.Price),
		zap.Uint("category_id", req.CategoryID))

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		SKU:         req.SKU,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Style:       req.Style,
		Material:    req.Material,
		Finish:      req.Finish,
		RoomType:    req.RoomType,
		Rating:      req.Rating,
		IsAvailable: req.IsAvailable,
	}

	if err := h.catalog.CreateProduct(c.Request().Context(), product); err != nil {
		if errors.Is(err, catalog.ErrDuplicateSKU) {
			log.Warn("Product with this SKU already exists", zap.String("sku", req.SKU))
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "Product with this SKU already exists",
			})
		}
		log.Error("Failed to create product", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create product",
		})
	}

	prometheus.RecordProductOperation("create")
	log.Info("Product created successfully",
		zap.Uint("product_id", product.ID),
		zap.String("sku", product.SKU))
	return c.JSON(http.StatusCreated, product)
}

// Update handles updating an existing product
func (h *ProductHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid product ID",
		})
	}

	product, err := h.catalog.GetProduct(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Product not found",
			})
		}
		log.Error("Failed to load product", zap.Uint("product_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve product",
		})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.SKU != "" {
		product.SKU = req.SKU
	}
	if req.Price > 0 {
		product.Price = req.Price
	}
	if req.CategoryID != 0 {
		product.CategoryID = req.CategoryID
	}
	if req.Style != "" {
		product.Style = req.Style
	}
	if req.Material != "" {
		product.Material = req.Material
	}
	if req.Finish != "" {
		product.Finish = req.Finish
	}
	if req.RoomType != "" {
		product.RoomType = req.RoomType
	}
	if req.Rating > 0 {
		product.Rating = req.Rating
	}
	product.IsAvailable = req.IsAvailable

	if err := h.catalog.UpdateProduct(c.Request().Context(), product); err != nil {
		if errors.Is(err, catalog.ErrDuplicateSKU) {
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "Product with this SKU already exists",
			})
		}
		log.Error("Failed to update product", zap.Uint("product_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update product",
		})
	}

	prometheus.RecordProductOperation("update")
	log.Info("Product updated successfully", zap.Uint("product_id", id))
	return c.JSON(http.StatusOK, product)
}

// Delete handles removing a product
func (h *ProductHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid product ID",
		})
	}

	if err := h.catalog.DeleteProduct(c.Request().Context(), id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Product not found",
			})
		}
		log.Error("Failed to delete product", zap.Uint("product_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete product",
		})
	}

	prometheus.RecordProductOperation("delete")
	log.Info("Product deleted successfully", zap.Uint("product_id", id))
	return c.NoContent(http.StatusNoContent)
}

// CategoryRequest defines the structure for category creation requests
type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// ListCategories handles retrieving all product categories
func (h *ProductHandler) ListCategories(c echo.Context) error {
	log := logger.FromContext(c)

	categories, err := h.catalog.ListCategories(c.Request().Context())
	if err != nil {
		log.Error("Failed to list categories", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve categories",
		})
	}

	return c.JSON(http.StatusOK, categories)
}

// CreateCategory handles creating a new product category
func (h *ProductHandler) CreateCategory(c echo.Context) error {
	log := logger.FromContext(c)

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "name is required",
		})
	}

	category := &model.ProductCategory{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := h.catalog.CreateCategory(c.Request().Context(), category); err != nil {
		log.Error("Failed to create category", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create category",
		})
	}

	log.Info("Category created successfully",
		zap.Uint("category_id", category.ID),
		zap.String("name", category.Name))
	return c.JSON(http.StatusCreated, category)
}
