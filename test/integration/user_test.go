package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：用户模块集成测试
//
// 集成测试 vs 单元测试：
// - 单元测试：内存仓储直接驱动领域服务，测试单个函数的逻辑
// - 集成测试：请求真实运行的服务，测试完整的API流程
//
// 集成测试的价值：
// 1. 验证各组件协同工作（Handler → UseCase → Service → Repository）
// 2. 发现配置错误（如路由注册、中间件顺序）
// 3. 验证业务流程的完整性
//
// 运行方式：
//   go run ./cmd/api               # 先启动服务
//   go test -v ./test/integration/...

// TestUserRegister 测试用户注册功能
//
// 测试场景：
// 1. 正常注册
// 2. 重复邮箱注册（应失败）
// 3. 密码格式校验
// 4. 邮箱格式校验
func TestUserRegister(t *testing.T) {
	t.Run("正常注册", func(t *testing.T) {
		email := GenerateTestEmail("normal_user")
		registerReq := map[string]string{
			"username": "测试用户",
			"email":    email,
			"password": "Test1234",
		}

		resp := PostJSON(t, BaseURL+"/users/register", registerReq, "")

		assert.Equal(t, 0, resp.Code, "注册应该成功")

		var data RegisterData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.NotEmpty(t, data.ID, "应分配用户ID")
		assert.Equal(t, email, data.Email, "返回的邮箱应该与请求一致")
		assert.Equal(t, "测试用户", data.Username, "返回的用户名应该与请求一致")

		t.Logf("✓ 注册成功，用户ID: %s", data.ID)
	})

	t.Run("重复邮箱注册应失败", func(t *testing.T) {
		email := GenerateTestEmail("duplicate_user")
		registerReq := map[string]string{
			"username": "测试用户1",
			"email":    email,
			"password": "Test1234",
		}

		resp1 := PostJSON(t, BaseURL+"/users/register", registerReq, "")
		require.Equal(t, 0, resp1.Code, "第一次注册应该成功")

		registerReq["username"] = "测试用户2"
		resp2 := PostJSON(t, BaseURL+"/users/register", registerReq, "")

		assert.NotEqual(t, 0, resp2.Code, "重复邮箱注册应该失败")
		assert.Contains(t, resp2.Message, "邮箱", "错误信息应该提示邮箱相关")

		t.Logf("✓ 重复邮箱注册正确返回错误: %s", resp2.Message)
	})

	t.Run("密码过短应失败", func(t *testing.T) {
		registerReq := map[string]string{
			"username": "测试用户",
			"email":    GenerateTestEmail("short_pwd"),
			"password": "123",
		}

		resp := PostJSON(t, BaseURL+"/users/register", registerReq, "")

		assert.NotEqual(t, 0, resp.Code, "密码过短应该失败")

		t.Logf("✓ 密码过短正确返回错误: %s", resp.Message)
	})

	t.Run("邮箱格式错误应失败", func(t *testing.T) {
		registerReq := map[string]string{
			"username": "测试用户",
			"email":    "invalid-email",
			"password": "Test1234",
		}

		resp := PostJSON(t, BaseURL+"/users/register", registerReq, "")

		assert.NotEqual(t, 0, resp.Code, "邮箱格式错误应该失败")

		t.Logf("✓ 邮箱格式错误正确返回错误: %s", resp.Message)
	})
}

// TestUserLogin 测试用户登录功能
func TestUserLogin(t *testing.T) {
	// 先注册一个用户
	email := GenerateTestEmail("login_user")
	registerReq := map[string]string{
		"username": "登录测试",
		"email":    email,
		"password": "Test1234",
	}
	resp := PostJSON(t, BaseURL+"/users/register", registerReq, "")
	require.Equal(t, 0, resp.Code, "注册失败")

	t.Run("正常登录", func(t *testing.T) {
		loginReq := map[string]string{
			"email":    email,
			"password": "Test1234",
		}

		resp := PostJSON(t, BaseURL+"/users/login", loginReq, "")
		require.Equal(t, 0, resp.Code, "登录应该成功")

		var data LoginData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)

		assert.NotEmpty(t, data.AccessToken, "应返回Access Token")
		assert.NotEmpty(t, data.RefreshToken, "应返回Refresh Token")

		t.Logf("✓ 登录成功")
	})

	t.Run("密码错误应失败", func(t *testing.T) {
		loginReq := map[string]string{
			"email":    email,
			"password": "WrongPass1",
		}

		resp := PostJSON(t, BaseURL+"/users/login", loginReq, "")
		assert.NotEqual(t, 0, resp.Code, "密码错误应该失败")

		t.Logf("✓ 密码错误正确返回错误: %s", resp.Message)
	})

	t.Run("邮箱不存在时错误信息与密码错误一致", func(t *testing.T) {
		wrongPwdResp := PostJSON(t, BaseURL+"/users/login", map[string]string{
			"email":    email,
			"password": "WrongPass1",
		}, "")
		unknownResp := PostJSON(t, BaseURL+"/users/login", map[string]string{
			"email":    GenerateTestEmail("nobody"),
			"password": "Test1234",
		}, "")

		// 防止客户端据错误信息探测某邮箱是否已注册
		assert.Equal(t, wrongPwdResp.Code, unknownResp.Code)
		assert.Equal(t, wrongPwdResp.Message, unknownResp.Message)

		t.Logf("✓ 两种失败返回统一错误: %s", unknownResp.Message)
	})
}

// TestUserProfile 测试用户资料接口
func TestUserProfile(t *testing.T) {
	email, token := RegisterTestUser(t, "资料测试")

	t.Run("携带Token访问成功", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/profile", token)
		require.Equal(t, 0, resp.Code, "获取资料应该成功")

		var data RegisterData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, email, data.Email)

		t.Logf("✓ 资料获取成功: %s", data.Email)
	})

	t.Run("不带Token应被拒绝", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/profile", "")
		assert.NotEqual(t, 0, resp.Code, "未登录应该被拒绝")

		t.Logf("✓ 未登录正确返回错误: %s", resp.Message)
	})
}
