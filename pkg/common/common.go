package common

// Protocol constants for the Instagram private mobile API. These mirror what
// the Android app ships with and are expected to drift between app versions,
// so they live here as plain data rather than inside the request logic.

const APIBaseURL = "https://i.instagram.com/api/v1"

// UserAgentTemplate is filled from the device settings, in the order:
// app version, android version, android release, dpi, resolution,
// manufacturer, device, model, cpu, locale, version code.
const UserAgentTemplate = "Instagram %s Android (%d/%s; %s; %s; %s; %s; %s; %s; %s; %s)"

const (
	// SigKey signs legacy request bodies (HMAC-SHA256). The server stopped
	// verifying the digest, but the envelope format is still required.
	SigKey        = "46024e8f31e295869a0e861eaed42cb1dd8454b55232d85f6c6764365079374b"
	SigKeyVersion = "4"
)

// BreadcrumbKey is the shared secret of the typing-telemetry token attached
// to comment and caption submissions.
const BreadcrumbKey = "iN4$aGr0m"

// Password encryption key material, normally refreshed from the
// ig-set-password-encryption-* response headers.
const (
	PasswordPubKeyID = 205
	PasswordPubKey   = "LS0tLS1CRUdJTiBQVUJMSUMgS0VZLS0tLS0KTUlJQklqQU5CZ2txaGtpRzl3MEJBUUVGQUFPQ0FROEFNSUlCQ2dLQ0FRRUFrN1BuSlYxU1pKR1hhUjc1cW5KKwpaYjZ3dE96UHJ1eCttVjQ0SWRJbkxkaVFmQ3NDUVZUQkF3QlBtckJGSjVhM3VtVW82UW9GK0ViNFMxQTZGOUFpCkJDYXkzYnRXZENzeGtRUkk0VExkU3gvNGZuTTVEbllpUWpTUmI3ZWNTWGNaMThDV21WYUErbnpCamN3b05xR2gKdmszMytpcGtySEdVbXY1YTYxVUFhN3RmV1hkRGszRm8xNDRrUk5JcWZ3U2EwWnZyNmljOGwxRi95VGNLcDVpUApkNXVEOTNrSUlQZW12bWlWOU1OTVRzVUthZ29SSnBWekJ6Z2pnN0tsVjFaNXJRRVZZTlExZk4zZjBYaExlKytxCldtVXNPcE8rYWlpTk4rUnJYbWkrWWFGbmNPeG5RZ3RnS2lNaDZIeVVmU09JNFZCMW50WVA4Qm55M0Vzekd2NnAKVHdJREFRQUIKLS0tLS1FTkQgUFVCTElDIEtFWS0tLS0tCg=="
)

// BloksVersioningID tags feed requests with the client-side bloks build.
const BloksVersioningID = "e538d4591f238824118bfcb9528c8d005f2ea3becd947a3973c030ac971bb88e"

// LoginExperiments is sent verbatim on qe/sync during the pre-login phase.
const LoginExperiments = "ig_android_device_detection_info_upload,ig_android_gmail_oauth_in_reg,ig_android_account_linking_upsell_universe,ig_android_direct_main_tab_universe_v2,ig_android_login_identifier_fuzzy_match,ig_android_reg_modularization_universe,ig_android_video_render_codec_low_memory_gc,ig_android_device_verification_separate_endpoint,ig_android_email_fuzzy_matching_universe,ig_android_suma_landing_page,ig_android_smartlock_hints_universe,ig_android_video_ffmpegutil_pts_fix,ig_android_multi_tap_login_new,ig_android_caption_typeahead_fix_on_o_universe,ig_android_nux_add_email_device,ig_android_device_info_foreground_reporting,ig_android_device_verification_fb_signup,ig_android_passwordless_account_password_creation_universe,ig_android_direct_add_direct_to_android_native_photo_share_sheet,ig_android_quickcapture_keep_screen_on,ig_android_device_based_country_verification,ig_android_login_scroll_to_login_button,ig_growth_android_profile_pic_prefill_with_fb_pic_2,ig_account_identity_logged_out_signals_global_holdout_universe,ig_android_quick_capture_universe,ig_android_gmail_preview_summary,ig_emergency_brake_system_universe,ig_android_account_recovery_auto_login,ig_android_sim_info_upload,ig_android_mobile_http_flow_device_universe,ig_android_hide_fb_button_when_not_installed_universe,ig_android_targeted_one_tap_upsell_universe"

// SupportedCapabilities accompanies feed/reels_tray requests.
const SupportedCapabilities = `[{"name":"SUPPORTED_SDK_VERSIONS","value":"66.0,67.0,68.0,69.0,70.0,71.0,72.0,73.0,74.0,75.0,76.0,77.0,78.0,79.0,80.0,81.0,82.0,83.0,84.0,85.0,86.0,87.0,88.0,89.0,90.0,91.0,92.0,93.0,94.0,95.0,96.0,97.0,98.0,99.0,100.0"},{"name":"FACE_TRACKER_VERSION","value":"14"},{"name":"segmentation","value":"segmentation_enabled"},{"name":"COMPRESSION","value":"ETC2_COMPRESSION"},{"name":"world_tracker","value":"world_tracker_enabled"},{"name":"gyroscope","value":"gyroscope_enabled"}]`
