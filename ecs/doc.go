// Package ecs provides ECS adapters for drift.
package ecs
