package scenario

import (
	"fmt"
	"strings"

	"modeval/internal/analyzer"
)

// metricsBlob stringifies the metrics record for case-insensitive keyword
// probes. This is a known weak signal: it can false-positive on incidental
// substrings (a module name containing "timer" satisfies a timing probe)
// and must not be tightened without re-calibrating the scenario scores.
func metricsBlob(m *analyzer.Metrics) string {
	return strings.ToLower(fmt.Sprintf("%+v", *m))
}

func anyIndicator(blob string, indicators []string) bool {
	for _, ind := range indicators {
		if strings.Contains(blob, ind) {
			return true
		}
	}
	return false
}

// ratioFound returns |found ∩ required| / |required| for exact membership
// of required names in the recorded hits.
func ratioFound(required, recorded []string) float64 {
	if len(required) == 0 {
		return 0
	}
	found := 0
	for _, want := range required {
		for _, got := range recorded {
			if got == want {
				found++
				break
			}
		}
	}
	return float64(found) / float64(len(required))
}

func boolFrac(ok bool) float64 {
	if ok {
		return 1.0
	}
	return 0.0
}

func scenarioClamp(score float64) float64 {
	if score > 10.0 {
		return 10.0
	}
	return score
}

// evaluateBasicGPIO scores the LED-blink scenario: module presence (3 pts),
// the three GPIO functions (3 pts), a timing implementation probe (2 pts),
// and proper pin cleanup (2 pts).
func evaluateBasicGPIO(analysis *analyzer.Result, cfg Config) Result {
	m := &analysis.Metrics
	score := 0.0
	compliance := map[string]float64{}
	var recs []string

	compliance["required_modules"] = ratioFound(cfg.RequiredModules, m.ModulesUtilized)
	score += compliance["required_modules"] * 3.0

	gpioFunctions := []string{"xgpio_init_pin", "xgpio_write_pin", "xgpio_deinit_pin"}
	compliance["gpio_functions"] = ratioFound(gpioFunctions, m.FunctionsUsed)
	score += compliance["gpio_functions"] * 3.0

	blob := metricsBlob(m)
	compliance["timing_implementation"] = boolFrac(anyIndicator(blob, []string{"delay", "timer", "sleep", "500"}))
	score += compliance["timing_implementation"] * 2.0

	compliance["resource_cleanup"] = boolFrac(m.HasFunction("xgpio_deinit_pin"))
	score += compliance["resource_cleanup"] * 2.0

	if compliance["required_modules"] < 1.0 {
		recs = append(recs, "Use xgpio_hal module for GPIO operations")
	}
	if compliance["timing_implementation"] < 1.0 {
		recs = append(recs, "Implement proper timing for 500ms intervals")
	}
	if compliance["resource_cleanup"] < 1.0 {
		recs = append(recs, "Add proper GPIO cleanup with xgpio_deinit_pin")
	}

	return Result{
		ScenarioScore:         scenarioClamp(score),
		RequirementCompliance: compliance,
		ComplianceOrder: []string{
			"required_modules", "gpio_functions", "timing_implementation", "resource_cleanup",
		},
		PerformanceAnalysis: map[string]float64{
			"timing_accuracy":     compliance["timing_implementation"],
			"resource_management": compliance["resource_cleanup"],
		},
		PerformanceOrder: []string{"timing_accuracy", "resource_management"},
		Recommendations:  recs,
	}
}

// evaluateSensorReading scores the temperature-monitoring scenario across
// four equally weighted sub-groups (2.5 pts each).
func evaluateSensorReading(analysis *analyzer.Result, cfg Config) Result {
	m := &analysis.Metrics
	score := 0.0
	compliance := map[string]float64{}
	var recs []string

	compliance["required_modules"] = ratioFound(cfg.RequiredModules, m.ModulesUtilized)
	score += compliance["required_modules"] * 2.5

	sensorFunctions := []string{"xtemp_init", "xtemp_read_temperature", "xi2c_init"}
	compliance["sensor_interface"] = ratioFound(sensorFunctions, m.FunctionsUsed)
	score += compliance["sensor_interface"] * 2.5

	bufferFunctions := []string{"xring_buffer_init", "xring_buffer_put"}
	compliance["buffer_management"] = ratioFound(bufferFunctions, m.FunctionsUsed)
	score += compliance["buffer_management"] * 2.5

	blob := metricsBlob(m)
	compliance["alert_system"] = boolFrac(anyIndicator(blob, []string{"threshold", "alert", "75", "consecutive"}))
	score += compliance["alert_system"] * 2.5

	if compliance["required_modules"] < 1.0 {
		recs = append(recs, "Use all required modules: temperature sensor, I2C HAL, and ring buffer")
	}
	if compliance["sensor_interface"] < 1.0 {
		recs = append(recs, "Implement proper sensor initialization and data reading")
	}
	if compliance["buffer_management"] < 1.0 {
		recs = append(recs, "Use ring buffer for storing temperature readings")
	}
	if compliance["alert_system"] < 1.0 {
		recs = append(recs, "Implement temperature threshold alert system")
	}

	return Result{
		ScenarioScore:         scenarioClamp(score),
		RequirementCompliance: compliance,
		ComplianceOrder: []string{
			"required_modules", "sensor_interface", "buffer_management", "alert_system",
		},
		PerformanceAnalysis: map[string]float64{
			"data_collection":     compliance["sensor_interface"],
			"data_storage":        compliance["buffer_management"],
			"alert_functionality": compliance["alert_system"],
		},
		PerformanceOrder: []string{"data_collection", "data_storage", "alert_functionality"},
		Recommendations:  recs,
	}
}

// evaluateMotorControl scores the real-time motor-control scenario across
// five sub-groups (2 pts each).
func evaluateMotorControl(analysis *analyzer.Result, cfg Config) Result {
	m := &analysis.Metrics
	score := 0.0
	compliance := map[string]float64{}

	rtosFunctions := []string{"xrtos_create_task", "xrtos_init", "xrtos_start_scheduler"}
	compliance["rtos_implementation"] = ratioFound(rtosFunctions, m.FunctionsUsed)
	score += compliance["rtos_implementation"] * 2.0

	canFunctions := []string{"xcan_init", "xcan_transmit", "xcan_receive"}
	compliance["can_communication"] = ratioFound(canFunctions, m.FunctionsUsed)
	score += compliance["can_communication"] * 2.0

	timerFunctions := []string{"xhw_timer_init", "xhw_timer_start", "xhw_timer_set_period"}
	compliance["timer_usage"] = ratioFound(timerFunctions, m.FunctionsUsed)
	score += compliance["timer_usage"] * 2.0

	compliance["interrupt_handling"] = boolFrac(m.HasFunction("xgpio_configure_irq"))
	score += compliance["interrupt_handling"] * 2.0

	blob := metricsBlob(m)
	compliance["safety_features"] = boolFrac(anyIndicator(blob, []string{"emergency", "stop", "limit", "overcurrent", "safety"}))
	score += compliance["safety_features"] * 2.0

	return Result{
		ScenarioScore:         scenarioClamp(score),
		RequirementCompliance: compliance,
		ComplianceOrder: []string{
			"rtos_implementation", "can_communication", "timer_usage",
			"interrupt_handling", "safety_features",
		},
		PerformanceAnalysis: map[string]float64{
			"real_time_capability":    compliance["rtos_implementation"],
			"communication_protocols": compliance["can_communication"],
			"motor_control_precision": compliance["timer_usage"],
			"safety_implementation":   compliance["safety_features"],
		},
		PerformanceOrder: []string{
			"real_time_capability", "communication_protocols",
			"motor_control_precision", "safety_implementation",
		},
		Recommendations: motorControlRecommendations(compliance),
	}
}

// evaluateProtocolGateway scores the multi-protocol gateway scenario across
// five sub-groups (2 pts each).
func evaluateProtocolGateway(analysis *analyzer.Result, cfg Config) Result {
	m := &analysis.Metrics
	score := 0.0
	compliance := map[string]float64{}

	protocolModules := []string{"xmodbus_protocol", "xcan_protocol", "xproprietary_protocol"}
	compliance["multi_protocol"] = ratioFound(protocolModules, m.ModulesUtilized)
	score += compliance["multi_protocol"] * 2.0

	cryptoFunctions := []string{"xcrypto_init", "xcrypto_aes_encrypt", "xcrypto_aes_decrypt"}
	compliance["encryption"] = ratioFound(cryptoFunctions, m.FunctionsUsed)
	score += compliance["encryption"] * 2.0

	compliance["concurrent_processing"] = boolFrac(m.HasModule("xrtos_scheduler"))
	score += compliance["concurrent_processing"] * 2.0

	memoryModules := []string{"xmem_pool", "xring_buffer", "xdma_manager"}
	compliance["memory_optimization"] = ratioFound(memoryModules, m.ModulesUtilized)
	score += compliance["memory_optimization"] * 2.0

	compliance["power_management"] = boolFrac(m.HasModule("xpower_mgmt"))
	score += compliance["power_management"] * 2.0

	return Result{
		ScenarioScore:         scenarioClamp(score),
		RequirementCompliance: compliance,
		ComplianceOrder: []string{
			"multi_protocol", "encryption", "concurrent_processing",
			"memory_optimization", "power_management",
		},
		PerformanceAnalysis: map[string]float64{
			"protocol_integration":    compliance["multi_protocol"],
			"security_implementation": compliance["encryption"],
			"system_architecture":     compliance["concurrent_processing"],
			"resource_optimization":   compliance["memory_optimization"],
		},
		PerformanceOrder: []string{
			"protocol_integration", "security_implementation",
			"system_architecture", "resource_optimization",
		},
		Recommendations: gatewayRecommendations(compliance),
	}
}

func motorControlRecommendations(compliance map[string]float64) []string {
	var recs []string
	if compliance["rtos_implementation"] < 1.0 {
		recs = append(recs, "Implement proper RTOS task structure for real-time motor control")
	}
	if compliance["can_communication"] < 1.0 {
		recs = append(recs, "Add complete CAN bus communication for commands and status")
	}
	if compliance["timer_usage"] < 1.0 {
		recs = append(recs, "Use hardware timers for precise PWM generation")
	}
	if compliance["interrupt_handling"] < 1.0 {
		recs = append(recs, "Implement GPIO interrupts for encoder feedback")
	}
	if compliance["safety_features"] < 1.0 {
		recs = append(recs, "Add safety features: emergency stop, limits, overcurrent protection")
	}
	return recs
}

func gatewayRecommendations(compliance map[string]float64) []string {
	var recs []string
	if compliance["multi_protocol"] < 1.0 {
		recs = append(recs, "Implement all three protocols: Modbus, CAN, and proprietary")
	}
	if compliance["encryption"] < 1.0 {
		recs = append(recs, "Add data encryption for secure communication")
	}
	if compliance["concurrent_processing"] < 1.0 {
		recs = append(recs, "Use RTOS for concurrent protocol handling")
	}
	if compliance["memory_optimization"] < 1.0 {
		recs = append(recs, "Implement memory pools and efficient buffering")
	}
	if compliance["power_management"] < 1.0 {
		recs = append(recs, "Add power management for low-power operation")
	}
	return recs
}
