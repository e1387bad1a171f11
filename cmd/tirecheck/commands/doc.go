// Package commands wires the tirecheck CLI: building cars and motorcycles,
// inspecting their tires and running the pressure check on a single tire.
package commands
