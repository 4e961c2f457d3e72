// Package docs holds the OpenAPI document served at /swagger.
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
	"openapi": "3.1.0",
	"info": {
		"title": "{{.Title}}",
		"description": "{{.Description}}",
		"version": "{{.Version}}"
	},
	"servers": [
		{
			"url": "/"
		}
	],
	"tags": [
		{
			"name": "ADMIN",
			"description": "Administrator accounts and tokens"
		},
		{
			"name": "READ",
			"description": "Public catalog and stock reads"
		},
		{
			"name": "WRITE",
			"description": "Authenticated catalog and stock changes"
		},
		{
			"name": "system",
			"description": "Health and build information"
		}
	],
	"paths": {
		"/health": {
			"get": {
				"tags": [
					"system"
				],
				"summary": "Health check",
				"operationId": "health",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/handler.HealthResponse"
								}
							}
						}
					},
					"503": {
						"description": "Service Unavailable",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/handler.HealthResponse"
								}
							}
						}
					}
				}
			}
		},
		"/system/info": {
			"get": {
				"tags": [
					"system"
				],
				"summary": "Get system information",
				"operationId": "getSystemInfo",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/handler.SystemInfoResponse"
								}
							}
						}
					}
				}
			}
		},
		"/admin/new-admin": {
			"post": {
				"tags": [
					"ADMIN"
				],
				"summary": "Create a new administrator",
				"operationId": "createAdmin",
				"responses": {
					"201": {
						"description": "Created",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/handler.AdminResponse"
								}
							}
						}
					},
					"409": {
						"description": "Conflict",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"422": {
						"description": "Validation Error",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ValidationErrorResponse"
								}
							}
						}
					},
					"429": {
						"description": "Too Many Requests",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					}
				},
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/handler.RegisterAdminRequest"
							}
						}
					}
				}
			}
		},
		"/admin/token": {
			"post": {
				"tags": [
					"ADMIN"
				],
				"summary": "Generate an access token",
				"operationId": "createToken",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/handler.TokenResponse"
								}
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"422": {
						"description": "Validation Error",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ValidationErrorResponse"
								}
							}
						}
					},
					"429": {
						"description": "Too Many Requests",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					}
				},
				"requestBody": {
					"required": true,
					"content": {
						"application/x-www-form-urlencoded": {
							"schema": {
								"$ref": "#/components/schemas/handler.TokenRequest"
							}
						}
					}
				}
			}
		},
		"/admin/admin-info": {
			"get": {
				"tags": [
					"ADMIN"
				],
				"summary": "Get own administrator record",
				"operationId": "getAdminInfo",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/handler.AdminResponse"
								}
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/update-info": {
			"put": {
				"tags": [
					"ADMIN"
				],
				"summary": "Update own names",
				"operationId": "updateAdminInfo",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/handler.AdminResponse"
								}
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"422": {
						"description": "Validation Error",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ValidationErrorResponse"
								}
							}
						}
					}
				},
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/handler.UpdateInfoRequest"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/change-password": {
			"put": {
				"tags": [
					"ADMIN"
				],
				"summary": "Change own password",
				"operationId": "changePassword",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/handler.AdminResponse"
								}
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"422": {
						"description": "Validation Error",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ValidationErrorResponse"
								}
							}
						}
					}
				},
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/handler.ChangePasswordRequest"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/delete-admin": {
			"delete": {
				"tags": [
					"ADMIN"
				],
				"summary": "Delete own account",
				"operationId": "deleteAdmin",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/handler.DetailResponse"
								}
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/categories": {
			"get": {
				"tags": [
					"READ"
				],
				"summary": "List categories",
				"operationId": "listCategories",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"type": "array",
									"items": {
										"$ref": "#/components/schemas/handler.CategoryResponse"
									}
								}
							}
						}
					}
				}
			}
		},
		"/admin/category_by_id/{id}": {
			"get": {
				"tags": [
					"READ"
				],
				"summary": "Get category by ID",
				"operationId": "getCategoryById",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/handler.CategoryResponse"
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"422": {
						"description": "Validation Error",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ValidationErrorResponse"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Category ID",
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				]
			}
		},
		"/admin/category_by_name/{name}": {
			"get": {
				"tags": [
					"READ"
				],
				"summary": "Get category by name",
				"operationId": "getCategoryByName",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/handler.CategoryResponse"
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "name",
						"in": "path",
						"required": true,
						"description": "Category name",
						"schema": {
							"type": "string"
						}
					}
				]
			}
		},
		"/admin/category": {
			"post": {
				"tags": [
					"WRITE"
				],
				"summary": "Create a new category",
				"operationId": "createCategory",
				"responses": {
					"201": {
						"description": "Created",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/handler.CategoryResponse"
								}
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"409": {
						"description": "Conflict",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"422": {
						"description": "Validation Error",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ValidationErrorResponse"
								}
							}
						}
					}
				},
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/handler.CreateCategoryRequest"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/category/{id}": {
			"put": {
				"tags": [
					"WRITE"
				],
				"summary": "Update a category",
				"operationId": "updateCategory",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/handler.CategoryResponse"
								}
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"409": {
						"description": "Conflict",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"422": {
						"description": "Validation Error",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ValidationErrorResponse"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Category ID",
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				],
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/handler.UpdateCategoryRequest"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"WRITE"
				],
				"summary": "Delete a category",
				"operationId": "deleteCategory",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.DetailResponse"
								}
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"422": {
						"description": "Validation Error",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ValidationErrorResponse"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Category ID",
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/products": {
			"get": {
				"tags": [
					"READ"
				],
				"summary": "List products",
				"operationId": "listProducts",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"type": "array",
									"items": {
										"$ref": "#/components/schemas/handler.ProductResponse"
									}
								}
							}
						}
					},
					"422": {
						"description": "Validation Error",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ValidationErrorResponse"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "category_id",
						"in": "query",
						"required": false,
						"description": "Only products of this category",
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				]
			}
		},
		"/admin/product_by_id/{id}": {
			"get": {
				"tags": [
					"READ"
				],
				"summary": "Get product by ID",
				"operationId": "getProductById",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/handler.ProductResponse"
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"422": {
						"description": "Validation Error",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ValidationErrorResponse"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Product ID",
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				]
			}
		},
		"/admin/product_by_sku/{sku}": {
			"get": {
				"tags": [
					"READ"
				],
				"summary": "Get product by SKU",
				"operationId": "getProductBySku",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/handler.ProductResponse"
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "sku",
						"in": "path",
						"required": true,
						"description": "Product SKU",
						"schema": {
							"type": "string"
						}
					}
				]
			}
		},
		"/admin/product": {
			"post": {
				"tags": [
					"WRITE"
				],
				"summary": "Create a new product",
				"operationId": "createProduct",
				"responses": {
					"201": {
						"description": "Created",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/handler.ProductResponse"
								}
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"409": {
						"description": "Conflict",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"422": {
						"description": "Validation Error",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ValidationErrorResponse"
								}
							}
						}
					}
				},
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/handler.CreateProductRequest"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/product/{id}": {
			"put": {
				"tags": [
					"WRITE"
				],
				"summary": "Update a product",
				"operationId": "updateProduct",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/handler.ProductResponse"
								}
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"409": {
						"description": "Conflict",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"422": {
						"description": "Validation Error",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ValidationErrorResponse"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Product ID",
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				],
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/handler.UpdateProductRequest"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"WRITE"
				],
				"summary": "Delete a product",
				"operationId": "deleteProduct",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.DetailResponse"
								}
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"422": {
						"description": "Validation Error",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ValidationErrorResponse"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Product ID",
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/inventories": {
			"get": {
				"tags": [
					"READ"
				],
				"summary": "List inventories",
				"operationId": "listInventories",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"type": "array",
									"items": {
										"$ref": "#/components/schemas/handler.InventoryResponse"
									}
								}
							}
						}
					},
					"422": {
						"description": "Validation Error",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ValidationErrorResponse"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "product_id",
						"in": "query",
						"required": false,
						"description": "Only inventories of this product",
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				]
			}
		},
		"/admin/inventory_by_id/{id}": {
			"get": {
				"tags": [
					"READ"
				],
				"summary": "Get inventory by ID",
				"operationId": "getInventoryById",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/handler.InventoryResponse"
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"422": {
						"description": "Validation Error",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ValidationErrorResponse"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Inventory ID",
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				]
			}
		},
		"/admin/inventory_by_id/{id}/transactions": {
			"get": {
				"tags": [
					"READ"
				],
				"summary": "List the transactions of an inventory",
				"operationId": "listInventoryTransactions",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"type": "array",
									"items": {
										"$ref": "#/components/schemas/handler.TransactionResponse"
									}
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"422": {
						"description": "Validation Error",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ValidationErrorResponse"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Inventory ID",
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				]
			}
		},
		"/admin/inventory": {
			"post": {
				"tags": [
					"WRITE"
				],
				"summary": "Create an inventory",
				"operationId": "createInventory",
				"responses": {
					"201": {
						"description": "Created",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/handler.InventoryResponse"
								}
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"409": {
						"description": "Conflict",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"422": {
						"description": "Validation Error",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ValidationErrorResponse"
								}
							}
						}
					}
				},
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/handler.CreateInventoryRequest"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/inventory/{id}": {
			"delete": {
				"tags": [
					"WRITE"
				],
				"summary": "Delete an inventory",
				"operationId": "deleteInventory",
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.DetailResponse"
								}
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"422": {
						"description": "Validation Error",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ValidationErrorResponse"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Inventory ID",
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/inventory_transaction": {
			"post": {
				"tags": [
					"WRITE"
				],
				"summary": "Record an inventory transaction",
				"operationId": "recordInventoryTransaction",
				"responses": {
					"201": {
						"description": "Created",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/handler.TransactionResponse"
								}
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ErrorResponse"
								}
							}
						}
					},
					"422": {
						"description": "Validation Error",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.ValidationErrorResponse"
								}
							}
						}
					}
				},
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/handler.RecordTransactionRequest"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"components": {
		"schemas": {
			"dto.DetailResponse": {
				"type": "object",
				"properties": {
					"detail": {
						"type": "string",
						"example": "success"
					}
				}
			},
			"dto.ErrorResponse": {
				"type": "object",
				"properties": {
					"detail": {
						"type": "string"
					}
				}
			},
			"dto.FieldError": {
				"type": "object",
				"properties": {
					"loc": {
						"type": "array",
						"items": {
							"type": "string"
						},
						"example": [
							"body",
							"email"
						]
					},
					"msg": {
						"type": "string"
					},
					"type": {
						"type": "string",
						"example": "value_error"
					}
				}
			},
			"dto.Ref": {
				"type": "object",
				"properties": {
					"id": {
						"type": "string",
						"format": "uuid"
					},
					"created": {
						"type": "string",
						"format": "date-time",
						"example": "2024-01-02T03:04:05"
					},
					"updated": {
						"type": "string",
						"format": "date-time",
						"example": "2024-01-02T03:04:05"
					}
				}
			},
			"dto.ValidationErrorResponse": {
				"type": "object",
				"properties": {
					"detail": {
						"type": "string"
					},
					"errors": {
						"type": "array",
						"items": {
							"$ref": "#/components/schemas/dto.FieldError"
						}
					}
				}
			},
			"handler.AdminResponse": {
				"type": "object",
				"properties": {
					"id": {
						"type": "string",
						"format": "uuid"
					},
					"created": {
						"type": "string",
						"format": "date-time",
						"example": "2024-01-02T03:04:05"
					},
					"updated": {
						"type": "string",
						"format": "date-time",
						"example": "2024-01-02T03:04:05"
					},
					"email": {
						"type": "string"
					},
					"first_name": {
						"type": "string"
					},
					"last_name": {
						"type": "string"
					}
				}
			},
			"handler.CategoryResponse": {
				"type": "object",
				"properties": {
					"id": {
						"type": "string",
						"format": "uuid"
					},
					"created": {
						"type": "string",
						"format": "date-time",
						"example": "2024-01-02T03:04:05"
					},
					"updated": {
						"type": "string",
						"format": "date-time",
						"example": "2024-01-02T03:04:05"
					},
					"name": {
						"type": "string"
					},
					"code": {
						"type": "string"
					},
					"description": {
						"type": "string"
					},
					"products": {
						"type": "array",
						"items": {
							"$ref": "#/components/schemas/dto.Ref"
						}
					}
				}
			},
			"handler.ChangePasswordRequest": {
				"type": "object",
				"properties": {
					"old_password": {
						"type": "string"
					},
					"new_password": {
						"type": "string",
						"maxLength": 72
					}
				},
				"required": [
					"old_password",
					"new_password"
				]
			},
			"handler.CreateCategoryRequest": {
				"type": "object",
				"properties": {
					"name": {
						"type": "string",
						"maxLength": 100,
						"example": "Electronics"
					},
					"code": {
						"type": "string",
						"maxLength": 5,
						"example": "ELEC"
					},
					"description": {
						"type": "string",
						"example": "Electronic products and accessories"
					}
				},
				"required": [
					"name",
					"code",
					"description"
				]
			},
			"handler.CreateInventoryRequest": {
				"type": "object",
				"properties": {
					"product_id": {
						"type": "string",
						"format": "uuid"
					},
					"country": {
						"type": "string",
						"description": "ISO 3166-1 alpha-2 code",
						"example": "NG"
					},
					"quantity": {
						"type": "integer",
						"minimum": 0,
						"maximum": 2147483647,
						"example": 100
					}
				},
				"required": [
					"product_id",
					"country",
					"quantity"
				]
			},
			"handler.CreateProductRequest": {
				"type": "object",
				"properties": {
					"name": {
						"type": "string",
						"maxLength": 30,
						"example": "Desk Lamp"
					},
					"sku": {
						"type": "string",
						"maxLength": 8,
						"example": "LAMP-01"
					},
					"description": {
						"type": [
							"string",
							"null"
						]
					},
					"price": {
						"type": "string",
						"example": "19.99",
						"description": "Decimal amount, not negative"
					},
					"category_id": {
						"type": "string",
						"format": "uuid"
					},
					"is_active": {
						"type": "boolean",
						"default": true
					}
				},
				"required": [
					"name",
					"sku",
					"price",
					"category_id"
				]
			},
			"handler.HealthResponse": {
				"type": "object",
				"properties": {
					"status": {
						"type": "string",
						"example": "healthy"
					},
					"database": {
						"type": "string",
						"example": "up"
					}
				}
			},
			"handler.InventoryResponse": {
				"type": "object",
				"properties": {
					"id": {
						"type": "string",
						"format": "uuid"
					},
					"created": {
						"type": "string",
						"format": "date-time",
						"example": "2024-01-02T03:04:05"
					},
					"updated": {
						"type": "string",
						"format": "date-time",
						"example": "2024-01-02T03:04:05"
					},
					"product_id": {
						"type": "string",
						"format": "uuid"
					},
					"country": {
						"type": "string"
					},
					"quantity": {
						"type": "integer"
					},
					"transactions": {
						"type": "array",
						"items": {
							"$ref": "#/components/schemas/dto.Ref"
						}
					}
				}
			},
			"handler.ProductResponse": {
				"type": "object",
				"properties": {
					"id": {
						"type": "string",
						"format": "uuid"
					},
					"created": {
						"type": "string",
						"format": "date-time",
						"example": "2024-01-02T03:04:05"
					},
					"updated": {
						"type": "string",
						"format": "date-time",
						"example": "2024-01-02T03:04:05"
					},
					"name": {
						"type": "string"
					},
					"sku": {
						"type": "string"
					},
					"description": {
						"type": [
							"string",
							"null"
						]
					},
					"price": {
						"type": "string",
						"example": "19.99",
						"description": "Decimal amount, not negative"
					},
					"category_id": {
						"type": "string",
						"format": "uuid"
					},
					"is_active": {
						"type": "boolean"
					},
					"inventories": {
						"type": "array",
						"items": {
							"$ref": "#/components/schemas/dto.Ref"
						}
					}
				}
			},
			"handler.RecordTransactionRequest": {
				"type": "object",
				"properties": {
					"inventory_id": {
						"type": "string",
						"format": "uuid"
					},
					"quantity": {
						"type": "integer",
						"minimum": -2147483647,
						"maximum": 2147483647,
						"not": {
							"const": 0
						},
						"example": -5
					}
				},
				"required": [
					"inventory_id",
					"quantity"
				]
			},
			"handler.RegisterAdminRequest": {
				"type": "object",
				"properties": {
					"email": {
						"type": "string",
						"format": "email",
						"maxLength": 254,
						"example": "ada@example.com"
					},
					"password": {
						"type": "string",
						"maxLength": 72,
						"example": "s3cret-pass"
					},
					"first_name": {
						"type": "string",
						"maxLength": 100,
						"example": "Ada"
					},
					"last_name": {
						"type": "string",
						"maxLength": 100,
						"example": "Lovelace"
					}
				},
				"required": [
					"email",
					"password",
					"first_name",
					"last_name"
				]
			},
			"handler.SystemInfoResponse": {
				"type": "object",
				"properties": {
					"name": {
						"type": "string"
					},
					"version": {
						"type": "string"
					},
					"go_version": {
						"type": "string"
					},
					"uptime": {
						"type": "string",
						"example": "1h30m45s"
					}
				}
			},
			"handler.TokenRequest": {
				"type": "object",
				"properties": {
					"username": {
						"type": "string",
						"description": "Administrator email"
					},
					"password": {
						"type": "string"
					}
				},
				"required": [
					"username",
					"password"
				]
			},
			"handler.TokenResponse": {
				"type": "object",
				"properties": {
					"access_token": {
						"type": "string"
					},
					"token_type": {
						"type": "string",
						"example": "bearer"
					},
					"expires_in": {
						"type": "integer",
						"example": 1800
					}
				}
			},
			"handler.TransactionResponse": {
				"type": "object",
				"properties": {
					"id": {
						"type": "string",
						"format": "uuid"
					},
					"created": {
						"type": "string",
						"format": "date-time",
						"example": "2024-01-02T03:04:05"
					},
					"updated": {
						"type": "string",
						"format": "date-time",
						"example": "2024-01-02T03:04:05"
					},
					"inventory_id": {
						"type": "string",
						"format": "uuid"
					},
					"quantity": {
						"type": "integer"
					},
					"balance": {
						"type": "integer",
						"description": "Only present on the response of a newly recorded transaction"
					}
				}
			},
			"handler.UpdateCategoryRequest": {
				"type": "object",
				"properties": {
					"name": {
						"type": "string",
						"maxLength": 100
					},
					"code": {
						"type": "string",
						"maxLength": 5
					},
					"description": {
						"type": "string"
					}
				}
			},
			"handler.UpdateInfoRequest": {
				"type": "object",
				"properties": {
					"first_name": {
						"type": "string",
						"maxLength": 100,
						"example": "Ada"
					},
					"last_name": {
						"type": "string",
						"maxLength": 100,
						"example": "Byron"
					}
				}
			},
			"handler.UpdateProductRequest": {
				"type": "object",
				"properties": {
					"name": {
						"type": "string",
						"maxLength": 30
					},
					"sku": {
						"type": "string",
						"maxLength": 8
					},
					"description": {
						"type": [
							"string",
							"null"
						]
					},
					"price": {
						"type": "string",
						"example": "19.99",
						"description": "Decimal amount, not negative"
					},
					"category_id": {
						"type": "string",
						"format": "uuid"
					},
					"is_active": {
						"type": "boolean"
					}
				}
			}
		},
		"securitySchemes": {
			"BearerAuth": {
				"type": "http",
				"scheme": "bearer",
				"bearerFormat": "JWT",
				"description": "Token from POST /admin/token"
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Title:            "Inventory Admin API",
	Description:      "Administrative API for categories, products, per-country inventories and stock transactions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
