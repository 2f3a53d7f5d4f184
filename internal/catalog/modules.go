package catalog

// moduleTable is the fixed registry of internal modules. Header paths are
// relative to the firmware tree root; symbol lists cover the exported API
// surface the analyzer matches against.
var moduleTable = []Descriptor{
	{
		Name:   "xgpio_hal",
		Header: "internal_modules/hal/xgpio_hal.h",
		Functions: []string{
			"xgpio_init_pin", "xgpio_deinit_pin", "xgpio_write_pin",
			"xgpio_read_pin", "xgpio_toggle_pin", "xgpio_configure_irq",
		},
		Types:     []string{"xgpio_config_t", "xgpio_pin_state_t", "xgpio_pin_mode_t"},
		Constants: []string{"XGPIO_PIN_HIGH", "XGPIO_PIN_LOW", "XGPIO_MODE_OUTPUT"},
	},
	{
		Name:   "xspi_hal",
		Header: "internal_modules/hal/xspi_hal.h",
		Functions: []string{
			"xspi_init", "xspi_transfer", "xspi_transmit", "xspi_receive",
		},
		Types:     []string{"xspi_config_t", "xspi_transfer_t", "xspi_mode_t"},
		Constants: []string{"XSPI_MODE_0", "XSPI_BITORDER_MSB"},
	},
	{
		Name:   "xi2c_hal",
		Header: "internal_modules/hal/xi2c_hal.h",
		Functions: []string{
			"xi2c_init", "xi2c_master_transmit", "xi2c_master_receive",
			"xi2c_mem_read", "xi2c_mem_write",
		},
		Types:     []string{"xi2c_config_t", "xi2c_speed_t", "xi2c_status_t"},
		Constants: []string{"XI2C_SPEED_STANDARD", "XI2C_STATUS_OK"},
	},
	{
		Name:   "xuart_hal",
		Header: "internal_modules/hal/xuart_hal.h",
		Functions: []string{
			"xuart_init", "xuart_transmit", "xuart_receive",
			"xuart_transmit_async", "xuart_receive_async",
		},
		Types:     []string{"xuart_config_t", "xuart_baudrate_t", "xuart_parity_t"},
		Constants: []string{"XUART_BAUDRATE_115200", "XUART_PARITY_NONE"},
	},
	{
		Name:   "xtemp_sensor",
		Header: "internal_modules/sensors/xtemp_sensor.h",
		Functions: []string{
			"xtemp_init", "xtemp_read_temperature", "xtemp_read_temperature_c",
			"xtemp_set_thresholds", "xtemp_enable_alerts",
		},
		Types:     []string{"xtemp_config_t", "xtemp_data_t", "xtemp_resolution_t"},
		Constants: []string{"XTEMP_RESOLUTION_12BIT", "XTEMP_MODE_CONTINUOUS"},
	},
	{
		Name:   "xaccel_sensor",
		Header: "internal_modules/sensors/xaccel_sensor.h",
		Functions: []string{
			"xaccel_init", "xaccel_read_data", "xaccel_calibrate",
			"xaccel_enable_motion_detection",
		},
		Types:     []string{"xaccel_config_t", "xaccel_data_t", "xaccel_range_t"},
		Constants: []string{"XACCEL_RANGE_2G", "XACCEL_ODR_100HZ"},
	},
	{
		Name:   "xgyro_sensor",
		Header: "internal_modules/sensors/xgyro_sensor.h",
		Functions: []string{
			"xgyro_init", "xgyro_read_data", "xgyro_calibrate_bias",
			"xgyro_perform_self_test",
		},
		Types:     []string{"xgyro_config_t", "xgyro_data_t", "xgyro_range_t"},
		Constants: []string{"XGYRO_RANGE_250DPS", "XGYRO_ODR_104HZ"},
	},
	{
		Name:   "xmem_pool",
		Header: "internal_modules/memory/xmem_pool.h",
		Functions: []string{
			"xmem_pool_create", "xmem_pool_alloc", "xmem_pool_free",
			"xmem_pool_get_stats", "xmem_pool_check_integrity",
		},
		Types:     []string{"xmem_pool_config_t", "xmem_pool_stats_t", "xmem_pool_handle_t"},
		Constants: []string{"XMEM_POOL_STATUS_OK", "XMEM_POOL_STATUS_FULL"},
	},
	{
		Name:   "xring_buffer",
		Header: "internal_modules/memory/xring_buffer.h",
		Functions: []string{
			"xring_buffer_init", "xring_buffer_put", "xring_buffer_get",
			"xring_buffer_put_multiple", "xring_buffer_is_full",
		},
		Types:     []string{"xring_buffer_t", "xring_buffer_stats_t", "xring_buffer_mode_t"},
		Constants: []string{"XRING_BUFFER_OK", "XRING_BUFFER_MODE_OVERWRITE"},
	},
	{
		Name:   "xdma_manager",
		Header: "internal_modules/memory/xdma_manager.h",
		Functions: []string{
			"xdma_init", "xdma_allocate_channel", "xdma_configure_transfer",
			"xdma_start_transfer", "xdma_get_transfer_status",
		},
		Types:     []string{"xdma_transfer_config_t", "xdma_status_t", "xdma_priority_t"},
		Constants: []string{"XDMA_STATUS_COMPLETE", "XDMA_PRIORITY_HIGH"},
	},
	{
		Name:   "xcan_protocol",
		Header: "internal_modules/protocols/xcan_protocol.h",
		Functions: []string{
			"xcan_init", "xcan_start", "xcan_transmit", "xcan_receive",
			"xcan_add_filter", "xcan_set_rx_callback",
		},
		Types:     []string{"xcan_config_t", "xcan_frame_t", "xcan_bitrate_t"},
		Constants: []string{"XCAN_BITRATE_500K", "XCAN_FRAME_STANDARD"},
	},
	{
		Name:   "xmodbus_protocol",
		Header: "internal_modules/protocols/xmodbus_protocol.h",
		Functions: []string{
			"xmodbus_init", "xmodbus_read_holding_registers",
			"xmodbus_write_multiple_registers", "xmodbus_master_request",
		},
		Types:     []string{"xmodbus_config_t", "xmodbus_request_t", "xmodbus_mode_t"},
		Constants: []string{"XMODBUS_MODE_RTU", "XMODBUS_STATUS_OK"},
	},
	{
		Name:   "xproprietary_protocol",
		Header: "internal_modules/protocols/xproprietary_protocol.h",
		Functions: []string{
			"xprop_init", "xprop_send_packet", "xprop_send_data",
			"xprop_process_received_data", "xprop_set_rx_callback",
		},
		Types:     []string{"xprop_config_t", "xprop_packet_t", "xprop_priority_t"},
		Constants: []string{"XPROP_PACKET_TYPE_DATA", "XPROP_PRIORITY_HIGH"},
	},
	{
		Name:   "xrtos_scheduler",
		Header: "internal_modules/scheduler/xrtos_scheduler.h",
		Functions: []string{
			"xrtos_init", "xrtos_create_task", "xrtos_start_scheduler",
			"xrtos_delay", "xrtos_yield",
		},
		Types:     []string{"xrtos_task_config_t", "xrtos_task_handle_t", "xrtos_priority_t"},
		Constants: []string{"XRTOS_PRIORITY_HIGH", "XRTOS_SCHED_POLICY_RR"},
	},
	{
		Name:   "xhw_timer",
		Header: "internal_modules/scheduler/xhw_timer.h",
		Functions: []string{
			"xhw_timer_init", "xhw_timer_start", "xhw_timer_set_period",
			"xhw_timer_set_callback", "xhw_timer_get_timestamp_us",
		},
		Types:     []string{"xhw_timer_config_t", "xhw_timer_mode_t", "xhw_timer_status_t"},
		Constants: []string{"XHW_TIMER_MODE_PERIODIC", "XHW_TIMER_STATUS_RUNNING"},
	},
	{
		Name:   "xsoft_timer",
		Header: "internal_modules/scheduler/xsoft_timer.h",
		Functions: []string{
			"xsoft_timer_init", "xsoft_timer_create", "xsoft_timer_start",
			"xsoft_timer_set_period", "xsoft_timer_process_timers",
		},
		Types:     []string{"xsoft_timer_config_t", "xsoft_timer_handle_t", "xsoft_timer_type_t"},
		Constants: []string{"XSOFT_TIMER_PERIODIC", "XSOFT_TIMER_STATUS_ACTIVE"},
	},
	{
		Name:   "xlcd_display",
		Header: "internal_modules/display/xlcd_display.h",
		Functions: []string{
			"xlcd_init", "xlcd_clear_screen", "xlcd_draw_text",
			"xlcd_draw_rectangle", "xlcd_set_backlight",
		},
		Types:     []string{"xlcd_config_t", "xlcd_color_t", "xlcd_rotation_t"},
		Constants: []string{"XLCD_ROTATION_0", "XLCD_FONT_MEDIUM"},
	},
	{
		Name:   "xpower_mgmt",
		Header: "internal_modules/power/xpower_mgmt.h",
		Functions: []string{
			"xpower_init", "xpower_set_mode", "xpower_enable_domain",
			"xpower_get_status", "xpower_enter_sleep_mode",
		},
		Types:     []string{"xpower_config_t", "xpower_status_t", "xpower_mode_t"},
		Constants: []string{"XPOWER_MODE_SLEEP", "XPOWER_DOMAIN_CPU"},
	},
	{
		Name:   "xcrypto_engine",
		Header: "internal_modules/crypto/xcrypto_engine.h",
		Functions: []string{
			"xcrypto_init", "xcrypto_aes_encrypt", "xcrypto_aes_decrypt",
			"xcrypto_hash_compute", "xcrypto_generate_random",
		},
		Types:     []string{"xcrypto_aes_config_t", "xcrypto_context_t", "xcrypto_status_t"},
		Constants: []string{"XCRYPTO_AES_256", "XCRYPTO_STATUS_OK"},
	},
}
