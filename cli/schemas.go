package main

const assetSchema = `
{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "Asset",
	"type": "object",
	"required": ["name"],
	"properties": {
		"kind": { "type": "string" },
		"apiVersion": { "type": "string" },
		"metadata": {
			"type": "object",
			"properties": {
				"id": { "type": "string" }
			}
		},
		"name": { "type": "string", "minLength": 1 },
		"tag": { "type": "string" },
		"serialNumber": { "type": "string" },
		"categoryId": { "type": "string" },
		"status": {
			"type": "string",
			"enum": ["ACTIVE", "IN_REPAIR", "IN_STORAGE", "RETIRED"]
		},
		"location": { "type": "string" },
		"assignedTo": { "type": "string" },
		"purchaseDate": { "type": "string", "format": "date-time" },
		"purchaseCost": { "type": "integer", "minimum": 0 },
		"notes": { "type": "string" }
	}
}`

const categorySchema = `
{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "Category",
	"type": "object",
	"required": ["name"],
	"properties": {
		"kind": { "type": "string" },
		"apiVersion": { "type": "string" },
		"metadata": {
			"type": "object",
			"properties": {
				"id": { "type": "string" }
			}
		},
		"name": { "type": "string", "minLength": 1 },
		"description": { "type": "string" }
	}
}`
