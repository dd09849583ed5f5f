package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：书评模块集成测试
// 覆盖提交、一人一书一评、修改、删除与平均评分的完整流程

// submitReview 提交书评辅助函数
func submitReview(t *testing.T, token, bookID string, rating int, comment string) *Response {
	t.Helper()
	return PostJSON(t, BaseURL+"/reviews", map[string]interface{}{
		"book_id": bookID,
		"rating":  rating,
		"comment": comment,
	}, token)
}

// TestReviewSubmit 测试书评提交
func TestReviewSubmit(t *testing.T) {
	_, ownerToken := RegisterTestUser(t, "书主")
	book := CreateTestBook(t, ownerToken, "书评测试图书")

	t.Run("正常提交", func(t *testing.T) {
		_, token := RegisterTestUser(t, "评论者A")

		resp := submitReview(t, token, book.ID, 5, "A masterpiece.")
		require.Equal(t, 0, resp.Code, "提交应该成功: %s", resp.Message)

		var data ReviewData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.NotEmpty(t, data.ID)
		assert.Equal(t, 5, data.Rating)
		assert.Equal(t, "评论者A", data.Username, "应冗余提交者用户名")

		t.Logf("✓ 提交成功，书评ID: %s", data.ID)
	})

	t.Run("未登录提交应被拒绝", func(t *testing.T) {
		resp := submitReview(t, "", book.ID, 4, "anonymous")
		assert.NotEqual(t, 0, resp.Code, "未登录应该被拒绝")

		t.Logf("✓ 未登录正确返回错误: %s", resp.Message)
	})

	t.Run("评分超出范围应失败", func(t *testing.T) {
		_, token := RegisterTestUser(t, "评论者B")

		resp := submitReview(t, token, book.ID, 6, "too good")
		assert.NotEqual(t, 0, resp.Code, "评分超出范围应该失败")

		t.Logf("✓ 非法评分正确返回错误: %s", resp.Message)
	})

	t.Run("同一用户重复评价就地更新", func(t *testing.T) {
		_, token := RegisterTestUser(t, "评论者C")

		resp1 := submitReview(t, token, book.ID, 3, "Decent.")
		require.Equal(t, 0, resp1.Code)
		var first ReviewData
		require.NoError(t, json.Unmarshal(resp1.Data, &first))

		resp2 := submitReview(t, token, book.ID, 5, "Changed my mind.")
		require.Equal(t, 0, resp2.Code)
		var second ReviewData
		require.NoError(t, json.Unmarshal(resp2.Data, &second))

		assert.Equal(t, first.ID, second.ID, "应复用原书评ID而非新增")
		assert.Equal(t, 5, second.Rating)

		t.Logf("✓ 重复评价就地更新，书评ID不变: %s", second.ID)
	})
}

// TestReviewOwnership 测试书评删除的所有权校验
func TestReviewOwnership(t *testing.T) {
	_, ownerToken := RegisterTestUser(t, "书主2")
	book := CreateTestBook(t, ownerToken, "书评所有权测试图书")

	_, authorToken := RegisterTestUser(t, "书评作者")
	_, otherToken := RegisterTestUser(t, "路人")

	resp := submitReview(t, authorToken, book.ID, 4, "Quite good.")
	require.Equal(t, 0, resp.Code)
	var rev ReviewData
	require.NoError(t, json.Unmarshal(resp.Data, &rev))

	deleteURL := fmt.Sprintf("%s/reviews/%s?book_id=%s", BaseURL, rev.ID, book.ID)

	t.Run("非作者删除被拒绝", func(t *testing.T) {
		resp := DeleteJSON(t, deleteURL, otherToken)
		assert.NotEqual(t, 0, resp.Code, "非作者删除应该被拒绝")

		t.Logf("✓ 非作者删除正确返回错误: %s", resp.Message)
	})

	t.Run("作者本人删除成功", func(t *testing.T) {
		resp := DeleteJSON(t, deleteURL, authorToken)
		require.Equal(t, 0, resp.Code, "作者删除应该成功: %s", resp.Message)

		t.Logf("✓ 删除成功")
	})

	t.Run("重复删除返回错误", func(t *testing.T) {
		resp := DeleteJSON(t, deleteURL, authorToken)
		assert.NotEqual(t, 0, resp.Code, "重复删除应该失败")

		t.Logf("✓ 重复删除正确返回错误: %s", resp.Message)
	})
}

// TestReviewAverage 测试平均评分
func TestReviewAverage(t *testing.T) {
	_, ownerToken := RegisterTestUser(t, "书主3")
	book := CreateTestBook(t, ownerToken, "平均分测试图书")

	// 三位用户分别打分 5, 4, 4
	for i, rating := range []int{5, 4, 4} {
		_, token := RegisterTestUser(t, fmt.Sprintf("打分用户%d", i))
		resp := submitReview(t, token, book.ID, rating, "scored")
		require.Equal(t, 0, resp.Code)
	}

	t.Run("书评列表返回均值", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/reviews?book_id="+book.ID, "")
		require.Equal(t, 0, resp.Code)

		var data struct {
			Total         int    `json:"total"`
			AverageRating string `json:"average_rating"`
			HasRating     bool   `json:"has_rating"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &data))

		assert.Equal(t, 3, data.Total)
		assert.Equal(t, "4.3", data.AverageRating, "均值保留一位小数")
		assert.True(t, data.HasRating)

		t.Logf("✓ 三条书评均分: %s", data.AverageRating)
	})

	t.Run("详情页携带同样的均值", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books/"+book.ISBN, "")
		require.Equal(t, 0, resp.Code)

		var data struct {
			ReviewCount   int    `json:"review_count"`
			AverageRating string `json:"average_rating"`
			HasRating     bool   `json:"has_rating"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &data))

		assert.Equal(t, 3, data.ReviewCount)
		assert.Equal(t, "4.3", data.AverageRating)
		assert.True(t, data.HasRating)

		t.Logf("✓ 详情页均分一致: %s", data.AverageRating)
	})

	t.Run("无书评图书标记为暂无评分", func(t *testing.T) {
		unrated := CreateTestBook(t, ownerToken, "暂无评分测试图书")

		resp := GetJSON(t, BaseURL+"/books/"+unrated.ISBN, "")
		require.Equal(t, 0, resp.Code)

		var data struct {
			ReviewCount   int    `json:"review_count"`
			AverageRating string `json:"average_rating"`
			HasRating     bool   `json:"has_rating"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &data))

		assert.Equal(t, 0, data.ReviewCount)
		assert.False(t, data.HasRating, "无书评时应标记暂无评分，而非0分")

		t.Logf("✓ 无书评图书: has_rating=%v average=%s", data.HasRating, data.AverageRating)
	})
}

// TestReviewListUnknownBook 测试查询未知图书的书评
func TestReviewListUnknownBook(t *testing.T) {
	resp := GetJSON(t, BaseURL+"/reviews?book_id=no-such-book", "")
	require.Equal(t, 0, resp.Code, "未知图书查询书评应返回空列表而非报错: %s", resp.Message)

	var data struct {
		Total     int  `json:"total"`
		HasRating bool `json:"has_rating"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))

	assert.Equal(t, 0, data.Total)
	assert.False(t, data.HasRating)

	t.Logf("✓ 未知图书返回空书评列表")
}
