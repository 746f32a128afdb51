package rewriter

// defaultEntries is ordered so that every key comes before any shorter key
// it contains (请输入验证码 before 输入验证, 注册失败 before 注册). The generic
// single words sit at the end for that reason.
var defaultEntries = []Entry{
	// Comments
	{From: "用户登录（密码登录）", To: "User login (password)"},
	{From: "如果没有传入参数，从输入框获取", To: "Get from input if not provided"},
	{From: "请输入验证码", To: "Please enter code"},
	{From: "输入验证", To: "Input validation"},
	{From: "邮箱格式验证", To: "Email format validation"},
	{From: "设置按钮加载状态", To: "Set button loading state"},
	{From: "友好的错误提示", To: "User-friendly error message"},
	{From: "更新应用状态", To: "Update app state"},
	{From: "记住登录邮箱", To: "Remember login email"},
	{From: "登录成功后直接跳转到首页", To: "Redirect to home after login"},
	{From: "显示登录成功提示", To: "Show login success message"},
	{From: "更新个人中心显示", To: "Update profile display"},

	// Toast messages
	{From: "请输入邮箱和密码", To: "Please enter email and password"},
	{From: "请输入有效的邮箱地址", To: "Please enter a valid email"},
	{From: "邮箱或密码错误，请检查后重试", To: "Invalid email or password"},
	{From: "请先验证邮箱，检查收件箱中的确认邮件", To: "Please verify email, check inbox"},
	{From: "登录成功！欢迎回来", To: "Login successful! Welcome back"},
	{From: "登录时发生错误，请稍后重试", To: "Login error, please try again"},
	{From: "网络连接异常", To: "Network error"},

	// Console logs
	{From: "开始登录", To: "Login Start"},
	{From: "正在发送登录请求", To: "Sending login request"},
	{From: "登录失败", To: "Login failed"},
	{From: "错误代码", To: "Error code"},
	{From: "错误消息", To: "Error message"},
	{From: "完整错误", To: "Full error"},
	{From: "登录成功", To: "Login successful"},
	{From: "用户信息", To: "User info"},
	{From: "应用状态已更新", To: "App state updated"},
	{From: "登录完成", To: "Login complete"},
	{From: "登录过程发生异常", To: "Login exception"},

	// Magic link
	{From: "正在发送登录链接", To: "Sending magic link"},
	{From: "发送登录链接失败", To: "Send magic link failed"},
	{From: "发送登录链接", To: "Send Magic Link"},
	{From: "请输入邮箱地址", To: "Please enter email"},
	{From: "发送中", To: "Sending"},
	{From: "发送失败", To: "Send failed"},
	{From: "登录链接已发送至邮箱，请查收", To: "Magic link sent to email"},
	{From: "已发送", To: "Sent"},
	{From: "重新发送", To: "Resend"},

	// Registration
	{From: "注册中", To: "Registering"},
	{From: "开始注册", To: "Registration Start"},
	{From: "注册失败", To: "Registration failed"},
	{From: "该邮箱已被注册，请直接登录", To: "Email already registered, please login"},
	{From: "密码不符合要求，请使用至少6位字符", To: "Password must be at least 6 characters"},
	{From: "密码长度至少为6位", To: "Password must be at least 6 characters"},
	{From: "密码长度不能超过72位", To: "Password cannot exceed 72 characters"},
	{From: "密码长度", To: "Password length"},
	{From: "两次输入的密码不一致，请重新输入", To: "Passwords do not match"},
	{From: "注册成功", To: "Registration successful"},
	{From: "注册完成", To: "Registration complete"},
	{From: "注册时发生错误，请稍后重试", To: "Registration error, please try again"},
	{From: "欢迎加入", To: "Welcome"},

	// Logout
	{From: "游客登录", To: "Guest Login"},
	{From: "开始登出", To: "Logout Start"},
	{From: "登出失败", To: "Logout failed"},
	{From: "已清除登录状态", To: "Login state cleared"},
	{From: "登出完成", To: "Logout complete"},
	{From: "登出过程发生异常", To: "Logout exception"},

	// Profile
	{From: "未绑定邮箱", To: "No email"},

	// Auth state
	{From: "认证状态变化", To: "Auth state changed"},

	// Buttons
	{From: "登录中", To: "Logging in"},
	{From: "登 录", To: "Login"},
	{From: "发送验证码", To: "Send Code"},
	{From: "验证中", To: "Verifying"},
	{From: "我知道了", To: "Got it"},
	{From: "打开 Dashboard", To: "Open Dashboard"},
	{From: "去登录", To: "Go to Login"},
	{From: "取消", To: "Cancel"},

	// Error messages
	{From: "发送过于频繁", To: "Too frequent"},
	{From: "请等待", To: "Please wait"},
	{From: "后重试", To: "and retry"},
	{From: "验证码错误或已过期，请重新获取", To: "Code invalid or expired"},
	{From: "验证码为6位数字", To: "Code must be 6 digits"},

	// Single words
	{From: "邮箱", To: "Email"},
	{From: "密码", To: "Password"},
	{From: "注册", To: "Register"},
	{From: "用户", To: "User"},
	{From: "秒", To: "s"},
	{From: "分钟", To: "min"},
	{From: "小时", To: "hour"},
}
