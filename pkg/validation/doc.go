// Package validation 설정값과 같은 외부 입력의 형식을 검증하는 함수를 제공합니다.
//
//   - CORS Origin 검증 (Scheme://Host[:Port])
//   - 리슨 주소(호스트, 포트) 검증
//
// 모든 함수는 상태를 갖지 않으며 여러 고루틴에서 동시에 호출해도 안전합니다.
package validation
